package nav

import (
	"testing"

	"gitlab.com/tinyland/lab/weather-reporter/pkg/input"
)

func selLong() input.Events {
	return input.Events{Select: input.Event{Button: input.ButtonSelect, Kind: input.KindLongPress}}
}

func selShort() input.Events {
	return input.Events{Select: input.Event{Button: input.ButtonSelect, Kind: input.KindShortPress}}
}

func leftPress() input.Events {
	return input.Events{Left: input.Event{Button: input.ButtonLeft, Kind: input.KindShortPress}}
}

func rightPress() input.Events {
	return input.Events{Right: input.Event{Button: input.ButtonRight, Kind: input.KindShortPress}}
}

func TestBootState(t *testing.T) {
	st := NewState(false)
	if st.Screen != ScreenHourly || st.Mode != ModeWeather {
		t.Errorf("boot state = %v/%v, want hourly/weather", st.Screen, st.Mode)
	}
	if !st.DisplayOn || !st.ColonVisible {
		t.Error("boot state should have display on and colon visible")
	}
}

func TestLongPressTogglesModeAndLandsOnHome(t *testing.T) {
	m := NewMachine(NewState(false))

	// Navigate off the weather home first.
	m.Step(TickInput{Events: leftPress()})

	res := m.Step(TickInput{Events: selLong()})
	st := m.State()
	if st.Mode != ModeSettings || st.Screen != ScreenSettings {
		t.Errorf("after long press: %v/%v, want settings/settings", st.Screen, st.Mode)
	}
	if res.Invalidation != InvalidateFull {
		t.Errorf("mode toggle invalidation = %v, want full", res.Invalidation)
	}

	// Toggling back also lands on the home screen, not where we left.
	m.Step(TickInput{Events: leftPress()})
	m.Step(TickInput{Events: selLong()})
	st = m.State()
	if st.Mode != ModeWeather || st.Screen != ScreenHourly {
		t.Errorf("after second long press: %v/%v, want hourly/weather", st.Screen, st.Mode)
	}
}

func TestShortPressTogglesPower(t *testing.T) {
	m := NewMachine(NewState(false))

	res := m.Step(TickInput{Events: selShort()})
	if m.State().DisplayOn {
		t.Fatal("display still on after short press")
	}
	if res.Power != PowerOff {
		t.Errorf("power command = %v, want off", res.Power)
	}
	if res.Invalidation != InvalidateNone {
		t.Errorf("sleep invalidation = %v, want none", res.Invalidation)
	}

	res = m.Step(TickInput{Events: selShort()})
	st := m.State()
	if !st.DisplayOn || res.Power != PowerOn {
		t.Error("short press did not wake the display")
	}
	if st.Screen != ScreenHourly || st.Mode != ModeWeather {
		t.Errorf("wake landed on %v/%v, want hourly/weather", st.Screen, st.Mode)
	}
	if res.Invalidation != InvalidateFull {
		t.Errorf("wake invalidation = %v, want full", res.Invalidation)
	}
}

func TestDirectionalNavigation(t *testing.T) {
	m := NewMachine(NewState(false))

	res := m.Step(TickInput{Events: leftPress()})
	if m.State().Screen != ScreenHourly2 {
		t.Errorf("left press landed on %v, want hourly2", m.State().Screen)
	}
	if res.Invalidation != InvalidateFull || !res.AdvanceConsumed {
		t.Error("manual navigation must redraw fully and restart auto-advance")
	}

	m.Step(TickInput{Events: rightPress()})
	if m.State().Screen != ScreenHourly {
		t.Errorf("right press landed on %v, want hourly", m.State().Screen)
	}
}

func TestDirectionalWakeDoesNotNavigate(t *testing.T) {
	m := NewMachine(NewState(false))
	m.Step(TickInput{Events: leftPress()})   // hourly2
	m.Step(TickInput{Events: selShort()})    // sleep

	res := m.Step(TickInput{Events: leftPress()})
	st := m.State()
	if !st.DisplayOn {
		t.Fatal("directional press did not wake")
	}
	if st.Screen != ScreenHourly {
		t.Errorf("wake landed on %v, want hourly", st.Screen)
	}
	if res.Power != PowerOn {
		t.Errorf("power command = %v, want on", res.Power)
	}
}

func TestSelectLongBeatsDirectional(t *testing.T) {
	m := NewMachine(NewState(false))
	ev := selLong()
	ev.Left = input.Event{Button: input.ButtonLeft, Kind: input.KindShortPress}

	m.Step(TickInput{Events: ev})
	st := m.State()
	if st.Mode != ModeSettings {
		t.Errorf("long press lost priority to directional: %v/%v", st.Screen, st.Mode)
	}
	if st.Screen != ScreenSettings {
		t.Errorf("combined tick landed on %v, want settings home", st.Screen)
	}
}

func TestAutoAdvance(t *testing.T) {
	m := NewMachine(NewState(true))

	res := m.Step(TickInput{AdvanceDue: true})
	if m.State().Screen != ScreenHourly2 {
		t.Errorf("auto-advance landed on %v, want hourly2", m.State().Screen)
	}
	if !res.AdvanceConsumed || res.Invalidation != InvalidateFull {
		t.Error("auto-advance must consume its timer and redraw fully")
	}
}

func TestAutoAdvanceLosesToButtons(t *testing.T) {
	m := NewMachine(NewState(true))

	res := m.Step(TickInput{Events: rightPress(), AdvanceDue: true})
	if m.State().Screen != ScreenDaily {
		t.Errorf("button press lost to auto-advance: %v", m.State().Screen)
	}
	// The manual step still restarts the countdown.
	if !res.AdvanceConsumed {
		t.Error("manual navigation did not consume the advance timer")
	}
}

func TestAutoAdvanceSkippedWhenDisabledOrAsleep(t *testing.T) {
	m := NewMachine(NewState(false))
	if res := m.Step(TickInput{AdvanceDue: true}); res.AdvanceConsumed {
		t.Error("disabled auto-advance consumed its timer")
	}
	if m.State().Screen != ScreenHourly {
		t.Error("disabled auto-advance navigated")
	}

	m = NewMachine(NewState(true))
	m.Step(TickInput{Events: selShort()}) // sleep
	if res := m.Step(TickInput{AdvanceDue: true}); res.AdvanceConsumed {
		t.Error("auto-advance ran with the display off")
	}
}

func TestBlinkTogglesColonAndRedrawsHeader(t *testing.T) {
	m := NewMachine(NewState(false))

	res := m.Step(TickInput{BlinkDue: true})
	if m.State().ColonVisible {
		t.Error("colon did not toggle off")
	}
	if !res.BlinkConsumed {
		t.Error("blink not consumed")
	}
	if res.Invalidation != InvalidateHeader {
		t.Errorf("blink invalidation = %v, want header", res.Invalidation)
	}

	res = m.Step(TickInput{BlinkDue: true})
	if !m.State().ColonVisible {
		t.Error("colon did not toggle back on")
	}
}

func TestBlinkColonTogglesEvenWhenNavigating(t *testing.T) {
	m := NewMachine(NewState(false))

	res := m.Step(TickInput{Events: leftPress(), BlinkDue: true})
	if m.State().ColonVisible {
		t.Error("colon toggle skipped on a navigation tick")
	}
	if !res.BlinkConsumed {
		t.Error("blink timer not consumed on a navigation tick")
	}
	// The full redraw from navigation subsumes the header redraw.
	if res.Invalidation != InvalidateFull {
		t.Errorf("invalidation = %v, want full", res.Invalidation)
	}
}

func TestBlinkNoRedrawOnHeaderlessScreen(t *testing.T) {
	m := NewMachine(NewState(false))
	m.Step(TickInput{Events: selLong()}) // settings mode

	res := m.Step(TickInput{BlinkDue: true})
	if res.Invalidation != InvalidateNone {
		t.Errorf("headerless blink invalidation = %v, want none", res.Invalidation)
	}
	// The colon still tracks time for when a header screen returns.
	if !res.BlinkConsumed {
		t.Error("blink not consumed on headerless screen")
	}
}

func TestBlinkIgnoredWhileAsleep(t *testing.T) {
	m := NewMachine(NewState(false))
	m.Step(TickInput{Events: selShort()}) // sleep

	res := m.Step(TickInput{BlinkDue: true})
	if res.BlinkConsumed || res.Invalidation != InvalidateNone {
		t.Error("blink acted while the display was off")
	}
}

func TestRefreshRedrawsCurrentScreen(t *testing.T) {
	m := NewMachine(NewState(false))

	res := m.Step(TickInput{Refreshed: true})
	if res.Invalidation != InvalidateFull {
		t.Errorf("refresh invalidation = %v, want full", res.Invalidation)
	}
	if m.State().Screen != ScreenHourly {
		t.Error("refresh must not navigate")
	}

	// While asleep a refresh changes nothing on screen.
	m.Step(TickInput{Events: selShort()})
	res = m.Step(TickInput{Refreshed: true})
	if res.Invalidation != InvalidateNone {
		t.Errorf("asleep refresh invalidation = %v, want none", res.Invalidation)
	}
}

func TestRefreshRedrawsFullyOnBlinkTick(t *testing.T) {
	m := NewMachine(NewState(false))

	// Blink and refresh land on the same tick every few refreshes; the
	// header redraw must not mask the new data.
	res := m.Step(TickInput{BlinkDue: true, Refreshed: true})
	if res.Invalidation != InvalidateFull {
		t.Errorf("combined blink+refresh invalidation = %v, want full", res.Invalidation)
	}
	if !res.BlinkConsumed {
		t.Error("blink not consumed on a refresh tick")
	}
	if m.State().ColonVisible {
		t.Error("colon did not toggle on a refresh tick")
	}

	// Asleep, the combined tick still paints nothing.
	m.Step(TickInput{Events: selShort()})
	res = m.Step(TickInput{BlinkDue: true, Refreshed: true})
	if res.Invalidation != InvalidateNone {
		t.Errorf("asleep blink+refresh invalidation = %v, want none", res.Invalidation)
	}
}

func TestWakeRestartsAutoAdvance(t *testing.T) {
	m := NewMachine(NewState(true))
	m.Step(TickInput{Events: selShort()}) // sleep

	// A timer that came due during sleep must not page away right after
	// waking.
	res := m.Step(TickInput{Events: leftPress(), AdvanceDue: true})
	if !res.AdvanceConsumed {
		t.Error("directional wake did not restart the advance countdown")
	}
	if m.State().Screen != ScreenHourly {
		t.Errorf("wake tick landed on %v, want hourly", m.State().Screen)
	}

	m.Step(TickInput{Events: selShort()}) // sleep again
	res = m.Step(TickInput{Events: selShort(), AdvanceDue: true})
	if !res.AdvanceConsumed {
		t.Error("select wake did not restart the advance countdown")
	}
}

func TestIdleTickDoesNothing(t *testing.T) {
	m := NewMachine(NewState(false))
	before := m.State()

	res := m.Step(TickInput{})
	if res.Invalidation != InvalidateNone || res.Power != PowerNone {
		t.Errorf("idle tick produced %+v", res)
	}
	if m.State() != before {
		t.Error("idle tick mutated state")
	}
}
