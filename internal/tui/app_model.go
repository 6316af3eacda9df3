package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-dev-utils/internal/logger"
	"github.com/MKhiriev/go-dev-utils/internal/service"
	"github.com/MKhiriev/go-dev-utils/internal/window"
	"github.com/MKhiriev/go-dev-utils/models"
)

type appModel struct {
	ctx       context.Context
	services  *service.Services
	lifecycle *window.Lifecycle
	logger    *logger.Logger

	active models.Tab
	base64 base64Tab
	jwt    jwtTab
	json   jsonTab

	width  int
	height int

	status    string
	statusErr bool
	statusSeq int

	overlay   *errorOverlayModel
	showAbout bool
	quitting  bool
}

func newAppModel(ctx context.Context, services *service.Services, lifecycle *window.Lifecycle, opts Options, log *logger.Logger) appModel {
	m := appModel{
		ctx:       ctx,
		services:  services,
		lifecycle: lifecycle,
		logger:    log,
		active:    lifecycle.SelectedTab(),
		base64:    newBase64Tab(),
		jwt:       newJWTTab(),
		json:      newJSONTab(opts.IndentWidth, highlighter{enabled: opts.Highlight, style: opts.HighlightStyle}),
	}
	m.focusActive()
	return m
}

func (m appModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.lifecycle.Resize(float64(msg.Width), float64(msg.Height))
		m.resizeInputs()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("what", msg.label).Msg("clipboard write failed")
			return m.setStatus("Copy failed: "+msg.err.Error(), true)
		}
		return m.setStatus("Copied "+msg.label, false)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if !m.lifecycle.Visible() {
		return m, nil
	}
	return m.updateInput(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.overlay = nil
		}
		return m, nil
	}

	in := intentFor(msg)

	if in.kind == intentQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if in.kind == intentToggleWindow {
		return m.toggleWindow()
	}
	if !m.lifecycle.Visible() {
		return m, nil
	}

	if m.showAbout {
		if in.kind == intentShowAbout || in.kind == intentCloseWindow {
			m.showAbout = false
		}
		return m, nil
	}

	switch in.kind {
	case intentCloseWindow:
		if err := m.lifecycle.Close(m.ctx); err != nil {
			m.showError(err)
		}
		return m, nil
	case intentSelectTab:
		m.selectTab(in.tab)
		return m, nil
	case intentNextTab:
		m.selectTab((m.active + 1) % models.TabCount)
		return m, nil
	case intentPrevTab:
		m.selectTab((m.active + models.TabCount - 1) % models.TabCount)
		return m, nil
	case intentCopyOutput:
		return m.copyOutput()
	case intentCopySection:
		if m.active != models.TabJWT {
			return m, nil
		}
		text := m.jwt.sectionText(in.section)
		if text == "" {
			return m, nil
		}
		return m, copyCmd(in.section.String(), text)
	case intentSwapMode:
		switch m.active {
		case models.TabBase64:
			m.base64.swap(m.services.TransformService)
		case models.TabJSON:
			m.json.swap(m.services.TransformService)
		}
		return m, nil
	case intentClear:
		m.clearActive()
		return m, nil
	case intentCycleIndent:
		if m.active == models.TabJSON {
			m.json.cycleIndent(m.services.TransformService)
		}
		return m, nil
	case intentCycleJSONMode:
		if m.active == models.TabJSON {
			m.json.cycleMode(m.services.TransformService)
		}
		return m, nil
	case intentShowAbout:
		m.showAbout = true
		return m, nil
	}

	return m.updateInput(msg)
}

func (m appModel) toggleWindow() (tea.Model, tea.Cmd) {
	wasVisible := m.lifecycle.Visible()
	if err := m.lifecycle.Toggle(m.ctx); err != nil {
		m.showError(err)
	}
	if !wasVisible && m.lifecycle.Visible() {
		// the terminal size seen while hidden becomes the live frame
		if m.width > 0 && m.height > 0 {
			m.lifecycle.Resize(float64(m.width), float64(m.height))
		}
		m.active = m.lifecycle.SelectedTab()
		m.focusActive()
	}
	return m, nil
}

// updateInput forwards msg to the focused input and reruns the transform
// when its text changed.
func (m appModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case models.TabBase64:
		before := m.base64.input.Value()
		m.base64.input, cmd = m.base64.input.Update(msg)
		if m.base64.input.Value() != before {
			m.base64.run(m.services.TransformService)
		}
	case models.TabJWT:
		before := m.jwt.input.Value()
		m.jwt.input, cmd = m.jwt.input.Update(msg)
		if m.jwt.input.Value() != before {
			m.jwt.run(m.services.JWTService)
		}
	case models.TabJSON:
		before := m.json.input.Value()
		m.json.input, cmd = m.json.input.Update(msg)
		if m.json.input.Value() != before {
			m.json.run(m.services.TransformService)
		}
	}

	return m, cmd
}

func (m *appModel) selectTab(tab models.Tab) {
	m.lifecycle.SelectTab(tab)
	m.active = m.lifecycle.SelectedTab()
	m.focusActive()
}

func (m *appModel) focusActive() {
	m.base64.input.Blur()
	m.jwt.input.Blur()
	m.json.input.Blur()

	switch m.active {
	case models.TabBase64:
		m.base64.input.Focus()
	case models.TabJWT:
		m.jwt.input.Focus()
	case models.TabJSON:
		m.json.input.Focus()
	}
}

func (m *appModel) clearActive() {
	switch m.active {
	case models.TabBase64:
		m.base64.clear()
	case models.TabJWT:
		m.jwt.clear()
	case models.TabJSON:
		m.json.clear()
	}
}

func (m appModel) copyOutput() (tea.Model, tea.Cmd) {
	var text string
	switch m.active {
	case models.TabBase64:
		text = m.base64.output()
	case models.TabJWT:
		text = m.jwt.output()
	case models.TabJSON:
		text = m.json.output()
	}

	if text == "" {
		return m, nil
	}
	return m, copyCmd("output", text)
}

func (m *appModel) resizeInputs() {
	width := m.width - 6
	if width < 20 {
		width = 20
	}
	m.base64.input.SetWidth(width)
	m.jwt.input.SetWidth(width)
	m.json.input.SetWidth(width)
}

func (m appModel) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	return m, clearStatusAfter(m.statusSeq)
}

func (m *appModel) showError(err error) {
	m.logger.Err(err).Msg("window state error")
	m.overlay = &errorOverlayModel{message: err.Error()}
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}
	if !m.lifecycle.Visible() {
		return m.stripView()
	}
	if m.showAbout {
		return appStyle.Render(renderBuildInfoWindow(m.services.AppInfoService.GetAppInfo(m.ctx)))
	}

	var body, help string
	switch m.active {
	case models.TabBase64:
		body = m.base64.view()
		help = hotKeys(keys.copy, keys.swap, keys.clear)
	case models.TabJWT:
		body = m.jwt.view()
		help = hotKeys(keys.copy, keys.copyHeader, keys.copyPayload, keys.copySignature, keys.clear)
	case models.TabJSON:
		body = m.json.view()
		help = hotKeys(keys.copy, keys.jsonMode, keys.indent, keys.swap, keys.clear)
	}

	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		body += "\n\n" + style.Render(m.status)
	}

	return appStyle.Render(renderPage(m.tabBar(), body, help))
}

func (m appModel) tabBar() string {
	labels := make([]string, 0, models.TabCount)
	for tab := models.Tab(0); tab < models.TabCount; tab++ {
		if tab == m.active {
			labels = append(labels, activeTabStyle.Render(tab.Title()))
		} else {
			labels = append(labels, inactiveTabStyle.Render(tab.Title()))
		}
	}
	return "DevUtils " + strings.Join(labels, "")
}

// stripView is what the hidden window leaves on screen.
func (m appModel) stripView() string {
	line := "DevUtils is hidden │ " + hotKeys(keys.toggle, keys.quit)
	if m.status != "" {
		line += " │ " + m.status
	}
	return stripStyle.Render(fitText(line, m.width))
}
