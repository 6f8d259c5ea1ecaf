package sim

import (
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
)

// previewCols is the terminal width of the panel preview. Each character
// cell shows two vertically stacked pixels via the half-block glyph, so the
// preview keeps the panel's 4:3 aspect at half the terminal's cell aspect.
const previewCols = 106

// FrameMsg tells the model a new frame was pushed. The display's OnFrame
// callback sends it through the running program.
type FrameMsg struct{}

// Model is the bubbletea model wrapping the simulated panel and buttons.
type Model struct {
	disp *Display
	pins *Pins
	quit func()
}

// NewModel returns a simulator model. quit, if non-nil, is invoked when the
// user exits so the control loop can be canceled.
func NewModel(disp *Display, pins *Pins, quit func()) Model {
	return Model{disp: disp, pins: pins, quit: quit}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model. Arrow keys and a/d tap the directional
// buttons, s taps select, S holds it past the long-press threshold.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "a":
			m.pins.TapLeft()
		case "right", "d":
			m.pins.TapRight()
		case "s", "enter":
			m.pins.TapSelect()
		case "S":
			m.pins.HoldSelect()
		case "q", "ctrl+c":
			if m.quit != nil {
				m.quit()
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
	offStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
)

// View implements tea.Model.
func (m Model) View() string {
	frame, on := m.disp.Frame()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Weather Reporter simulator"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("←/a left   →/d right   s select   S hold select   q quit"))
	b.WriteString("\n\n")

	if !on {
		b.WriteString(offStyle.Render("(display off)"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(renderFrame(frame))
	return b.String()
}

// renderFrame downscales the panel image and draws it with half-block
// characters, two pixels per terminal cell.
func renderFrame(frame *image.RGBA) string {
	bounds := frame.Bounds()
	rows := previewCols * bounds.Dy() / bounds.Dx() / 2
	small := imaging.Resize(frame, previewCols, rows*2, imaging.NearestNeighbor)

	var b strings.Builder
	for y := 0; y < rows; y++ {
		prevTop, prevBot := "", ""
		var style lipgloss.Style
		for x := 0; x < previewCols; x++ {
			top := hexColor(small.NRGBAAt(x, y*2).R, small.NRGBAAt(x, y*2).G, small.NRGBAAt(x, y*2).B)
			bot := hexColor(small.NRGBAAt(x, y*2+1).R, small.NRGBAAt(x, y*2+1).G, small.NRGBAAt(x, y*2+1).B)
			if top != prevTop || bot != prevBot {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(top)).
					Background(lipgloss.Color(bot))
				prevTop, prevBot = top, bot
			}
			b.WriteString(style.Render("▀"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
