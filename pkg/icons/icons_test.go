package icons

import (
	"reflect"
	"testing"

	"gitlab.com/tinyland/lab/weather-reporter/pkg/theme"
)

func pal() theme.Theme { return theme.Default() }

func TestCommandsDeterministic(t *testing.T) {
	a := Commands(500, false, 100, 100, 40, pal())
	b := Commands(500, false, 100, 100, 40, pal())
	if !reflect.DeepEqual(a, b) {
		t.Error("same inputs produced different command lists")
	}
}

func TestEveryBandProducesCommands(t *testing.T) {
	codes := []int{800, 801, 802, 803, 804, 500, 511, 531, 200, 232, 600, 622, 701, 781, 999, 300}
	for _, code := range codes {
		for _, night := range []bool{false, true} {
			cmds := Commands(code, night, 60, 60, 40, pal())
			if len(cmds) == 0 {
				t.Errorf("code %d night=%v produced no commands", code, night)
			}
		}
	}
}

func TestClearSkyDayNightDiffer(t *testing.T) {
	day := Commands(800, false, 60, 60, 40, pal())
	night := Commands(800, true, 60, 60, 40, pal())
	if reflect.DeepEqual(day, night) {
		t.Error("clear-sky day and night icons are identical")
	}
}

func TestClearDaySunHasRays(t *testing.T) {
	cmds := Commands(800, false, 60, 60, 40, pal())
	triangles := 0
	for _, c := range cmds {
		if c.Op == OpFillTriangle {
			triangles++
		}
	}
	if triangles < 8 {
		t.Errorf("sun has %d ray triangles, want at least 8", triangles)
	}
}

func TestScatteredAndBrokenShareShape(t *testing.T) {
	a := Commands(802, false, 60, 60, 40, pal())
	b := Commands(803, false, 60, 60, 40, pal())
	if !reflect.DeepEqual(a, b) {
		t.Error("codes 802 and 803 should render the same cloud")
	}
}

func TestUnknownCodeFallsBackToCloud(t *testing.T) {
	unknown := Commands(999, false, 60, 60, 40, pal())
	if len(unknown) == 0 {
		t.Fatal("unknown code rendered nothing")
	}
	for _, c := range unknown {
		if c.Op == OpFillTriangle {
			t.Fatal("fallback cloud should not contain triangles")
		}
	}
}

func TestRainHasDrops(t *testing.T) {
	cmds := Commands(500, false, 60, 60, 40, pal())
	lines := 0
	for _, c := range cmds {
		if c.Op == OpLine {
			lines++
		}
	}
	if lines == 0 {
		t.Error("rain icon has no drop lines")
	}
}

func TestStormHasBolt(t *testing.T) {
	cmds := Commands(200, false, 60, 60, 40, pal())
	bolt := false
	for _, c := range cmds {
		if c.Op == OpFillTriangle && c.Color == pal().Bolt {
			bolt = true
		}
	}
	if !bolt {
		t.Error("storm icon has no bolt triangle")
	}
}

func TestCommandsScaleWithSize(t *testing.T) {
	small := Commands(804, false, 60, 60, 20, pal())
	large := Commands(804, false, 60, 60, 60, pal())
	if reflect.DeepEqual(small, large) {
		t.Error("icon does not scale with size")
	}
	if len(small) != len(large) {
		t.Errorf("scaling changed command count: %d vs %d", len(small), len(large))
	}
}

func TestWindArrowRotates(t *testing.T) {
	north := WindArrow(60, 60, 0, 15, pal())
	east := WindArrow(60, 60, 90, 15, pal())
	if len(north) == 0 {
		t.Fatal("wind arrow rendered nothing")
	}
	if reflect.DeepEqual(north, east) {
		t.Error("wind arrow ignores bearing")
	}
}
