package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/pixibind/pixibind/pixi"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const tickInterval = 50 * time.Millisecond

// scene bundles the loop-confined handles; only Do closures touch it.
type scene struct {
	app    *pixi.Application
	sprite *pixi.Sprite
	ticker *pixi.Ticker
	handle *pixi.TickerHandle
}

type interactiveModel struct {
	err        error
	rt         *pixi.Runtime
	scene      *scene
	lib        string
	image      string
	width      float64
	height     float64
	background uint32
	version    string

	state   modelState
	paused  bool
	bobbing bool
	bob     *gween.Tween
	bobUp   bool
	baseY   float64

	speedInput textinput.Model

	clock    float64
	lastTick time.Time

	ticks    int
	rotation float64
	x, y     float64
	delta    float64
	fps      float64
	speed    float64
}

type modelState int

const (
	stateLoading modelState = iota
	stateRunning
	stateSpeedInput
)

func newInteractiveModel(lib, image string, width, height float64, background uint32) *interactiveModel {
	return &interactiveModel{
		lib:        lib,
		image:      image,
		width:      width,
		height:     height,
		background: background,
		state:      stateLoading,
		speed:      1,
	}
}

type sceneMsg struct {
	err     error
	rt      *pixi.Runtime
	scene   *scene
	version string
	y       float64
}

type frameMsg struct {
	err      error
	rotation float64
	x, y     float64
	delta    float64
	fps      float64
	speed    float64
}

type tickMsg time.Time

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadScene
}

func (m *interactiveModel) loadScene() tea.Msg {
	ctx := context.Background()

	rt, err := pixi.New(ctx)
	if err != nil {
		return sceneMsg{err: err}
	}
	if err := loadLibrary(ctx, rt, m.lib); err != nil {
		rt.Close(ctx)
		return sceneMsg{err: err}
	}
	version, err := rt.Version(ctx)
	if err != nil {
		rt.Close(ctx)
		return sceneMsg{err: err}
	}

	sc := &scene{}
	var startY float64
	err = rt.Do(ctx, func(ns *pixi.Namespace) error {
		opts := pixi.NewApplicationOptions().
			SetWidth(m.width).
			SetHeight(m.height).
			SetBackgroundColor(m.background).
			SetAutoStart(false)
		app, err := ns.NewApplicationWith(opts)
		if err != nil {
			return err
		}
		sc.app = app

		if err := mountView(ns, app); err != nil {
			return err
		}

		if sc.sprite, err = ns.SpriteFromImage(m.image); err != nil {
			return err
		}
		anchor, err := sc.sprite.Anchor()
		if err != nil {
			return err
		}
		if err := anchor.Set(0.5); err != nil {
			return err
		}
		if err := sc.sprite.SetX(m.width / 2); err != nil {
			return err
		}
		startY = m.height / 2
		if err := sc.sprite.SetY(startY); err != nil {
			return err
		}

		stage, err := app.Stage()
		if err != nil {
			return err
		}
		if err := stage.AddChild(sc.sprite); err != nil {
			return err
		}

		if sc.ticker, err = app.Ticker(); err != nil {
			return err
		}
		sprite := sc.sprite
		sc.handle, err = sc.ticker.Add(func(delta float64) {
			r, err := sprite.Rotation()
			if err != nil {
				return
			}
			sprite.SetRotation(r + 0.1*delta)
		})
		return err
	})
	if err != nil {
		rt.Close(ctx)
		return sceneMsg{err: err}
	}

	return sceneMsg{rt: rt, scene: sc, version: version, y: startY}
}

func (m *interactiveModel) scheduleTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// stepScene advances the foreign timeline by dt seconds and samples the
// sprite, all in one loop job.
func (m *interactiveModel) stepScene(dt float64) tea.Cmd {
	rt := m.rt
	sc := m.scene
	clock := m.clock

	var bobY float64
	hasBob := false
	if m.bobbing && m.bob != nil {
		v, finished := m.bob.Update(float32(dt))
		bobY = float64(v)
		hasBob = true
		if finished {
			m.flipBob(bobY)
		}
	}

	return func() tea.Msg {
		ctx := context.Background()
		var out frameMsg
		err := rt.Do(ctx, func(*pixi.Namespace) error {
			if hasBob {
				if err := sc.sprite.SetY(bobY); err != nil {
					return err
				}
			}
			if err := sc.ticker.UpdateAt(clock); err != nil {
				return err
			}
			var err error
			if out.rotation, err = sc.sprite.Rotation(); err != nil {
				return err
			}
			if out.x, err = sc.sprite.X(); err != nil {
				return err
			}
			if out.y, err = sc.sprite.Y(); err != nil {
				return err
			}
			if out.delta, err = sc.ticker.DeltaTime(); err != nil {
				return err
			}
			if out.fps, err = sc.ticker.FPS(); err != nil {
				return err
			}
			out.speed, err = sc.ticker.Speed()
			return err
		})
		if err != nil {
			return frameMsg{err: err}
		}
		return out
	}
}

func (m *interactiveModel) flipBob(from float64) {
	const bobRange = 40
	to := m.baseY + bobRange
	if m.bobUp {
		to = m.baseY - bobRange
	}
	m.bobUp = !m.bobUp
	m.bob = gween.New(float32(from), float32(to), 0.75, ease.InOutQuad)
}

func (m *interactiveModel) setSpeed(v float64) tea.Cmd {
	rt := m.rt
	sc := m.scene
	return func() tea.Msg {
		err := rt.Do(context.Background(), func(*pixi.Namespace) error {
			return sc.ticker.SetSpeed(v)
		})
		if err != nil {
			return frameMsg{err: err}
		}
		return nil
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateSpeedInput && msg.String() == "q" {
				break
			}
			if m.rt != nil {
				m.rt.Close(context.Background())
			}
			return m, tea.Quit

		case " ":
			if m.state == stateRunning {
				m.paused = !m.paused
				m.lastTick = time.Now()
			}

		case "+", "=":
			if m.state == stateRunning {
				m.speed += 0.25
				return m, m.setSpeed(m.speed)
			}

		case "-":
			if m.state == stateRunning && m.speed > 0.25 {
				m.speed -= 0.25
				return m, m.setSpeed(m.speed)
			}

		case "s":
			if m.state == stateRunning {
				ti := textinput.New()
				ti.Prompt = "speed: "
				ti.Placeholder = strconv.FormatFloat(m.speed, 'f', -1, 64)
				ti.Width = 10
				ti.Focus()
				m.speedInput = ti
				m.state = stateSpeedInput
				return m, nil
			}

		case "b":
			if m.state == stateRunning {
				m.bobbing = !m.bobbing
				if m.bobbing {
					m.baseY = m.y
					m.bobUp = false
					m.flipBob(m.y)
				} else {
					m.bob = nil
					rt, sc, y := m.rt, m.scene, m.baseY
					return m, func() tea.Msg {
						err := rt.Do(context.Background(), func(*pixi.Namespace) error {
							return sc.sprite.SetY(y)
						})
						if err != nil {
							return frameMsg{err: err}
						}
						return nil
					}
				}
			}

		case "r":
			if m.state == stateRunning {
				rt, sc := m.rt, m.scene
				return m, func() tea.Msg {
					err := rt.Do(context.Background(), func(*pixi.Namespace) error {
						return sc.sprite.SetRotation(0)
					})
					if err != nil {
						return frameMsg{err: err}
					}
					return nil
				}
			}

		case "enter":
			if m.state == stateSpeedInput {
				v, err := strconv.ParseFloat(strings.TrimSpace(m.speedInput.Value()), 64)
				m.state = stateRunning
				if err != nil || v < 0 {
					return m, nil
				}
				m.speed = v
				return m, m.setSpeed(v)
			}

		case "esc":
			if m.state == stateSpeedInput {
				m.state = stateRunning
			}
		}

	case sceneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.rt = msg.rt
		m.scene = msg.scene
		m.version = msg.version
		m.y = msg.y
		m.baseY = msg.y
		m.state = stateRunning
		m.lastTick = time.Now()
		return m, m.scheduleTick()

	case tickMsg:
		if m.state == stateLoading || m.err != nil {
			return m, nil
		}
		now := time.Time(msg)
		dt := now.Sub(m.lastTick).Seconds()
		m.lastTick = now
		if m.paused {
			return m, m.scheduleTick()
		}
		m.clock += dt * 1000
		m.ticks++
		return m, tea.Batch(m.stepScene(dt), m.scheduleTick())

	case frameMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.rotation = msg.rotation
		m.x = msg.x
		m.y = msg.y
		m.delta = msg.delta
		m.fps = msg.fps
		m.speed = msg.speed
	}

	if m.state == stateSpeedInput {
		var cmd tea.Cmd
		m.speedInput, cmd = m.speedInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.state == stateLoading {
		return "Loading " + m.lib + "..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Scene Runner"))
	b.WriteString(fmt.Sprintf(" %s %s\n\n", m.lib, m.version))

	rows := []struct {
		label string
		value string
	}{
		{"frames", strconv.Itoa(m.ticks)},
		{"rotation", fmt.Sprintf("%.3f rad", m.rotation)},
		{"position", fmt.Sprintf("(%.1f, %.1f)", m.x, m.y)},
		{"delta", fmt.Sprintf("%.3f", m.delta)},
		{"fps", fmt.Sprintf("%.1f", m.fps)},
		{"speed", fmt.Sprintf("%.2f", m.speed)},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-10s", row.label)),
			valueStyle.Render(row.value)))
	}

	if m.paused {
		b.WriteString("\n")
		b.WriteString(pausedStyle.Render("PAUSED"))
	}
	b.WriteString("\n")

	switch m.state {
	case stateSpeedInput:
		b.WriteString("\n")
		b.WriteString(m.speedInput.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))
	default:
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("space pause • +/- speed • s set speed • b bob • r reset • q quit"))
	}

	return b.String()
}

func runInteractive(lib, image string, width, height float64, background uint32) error {
	p := tea.NewProgram(newInteractiveModel(lib, image, width, height, background), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
