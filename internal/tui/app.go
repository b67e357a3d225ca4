package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/inputshowcase/internal/config"
	"github.com/muurk/inputshowcase/internal/logging"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenHome      Screen = "home"
	ScreenPurchase  Screen = "purchase"
	ScreenProfile   Screen = "profile"
	ScreenChat      Screen = "chat"
	ScreenSearch    Screen = "search"
	ScreenReview    Screen = "review"
	ScreenSettings  Screen = "settings"
	ScreenCalendar  Screen = "calendar"
	ScreenSocial    Screen = "social"
	ScreenCopyPaste Screen = "copypaste"
)

// ParseScreen maps a screen name to a Screen, falling back to home.
func ParseScreen(name string) Screen {
	for _, s := range []Screen{
		ScreenPurchase, ScreenProfile, ScreenChat, ScreenSearch, ScreenReview,
		ScreenSettings, ScreenCalendar, ScreenSocial, ScreenCopyPaste,
	} {
		if string(s) == name {
			return s
		}
	}
	return ScreenHome
}

// AppModel is the top-level coordinator model that manages screen transitions.
// All mutable UI state lives here; screen models are held by value.
type AppModel struct {
	CurrentScreen  Screen
	PreviousScreen Screen

	// Screen models
	Home      HomeModel
	Purchase  FormModel
	Profile   FormModel
	Review    FormModel
	Settings  FormModel
	Calendar  FormModel
	Social    SocialModel
	Search    SearchModel
	Chat      ChatModel
	CopyPaste CopyPasteModel

	Registry *config.Registry

	// UI state
	Width  int
	Height int
}

// NewAppModel creates a new application model starting at the specified screen
func NewAppModel(reg *config.Registry, startScreen Screen) AppModel {
	if reg == nil {
		reg = config.NewRegistry()
	}

	m := AppModel{
		CurrentScreen: ScreenHome,
		Home:          NewHomeModel(),
		Registry:      reg,
	}

	if startScreen != ScreenHome {
		m.openScreen(startScreen)
	}
	return m
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.initScreen(m.CurrentScreen)
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resizeAll(msg)
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		back bool
	)

	switch m.CurrentScreen {
	case ScreenHome:
		updated, c := m.Home.Update(msg)
		m.Home = updated.(HomeModel)
		cmd = c

		if m.Home.QuitRequested() {
			return m, tea.Quit
		}
		if next, ok := m.Home.Chosen(); ok {
			m.Home = m.Home.ClearChoice()
			cmd = m.transitionTo(next)
			return m, cmd
		}

	case ScreenPurchase, ScreenProfile, ScreenReview, ScreenSettings, ScreenCalendar:
		form := m.form(m.CurrentScreen)
		updated, c := form.Update(msg)
		*form = updated.(FormModel)
		cmd = c
		back = form.IsBackRequested()

	case ScreenSocial:
		updated, c := m.Social.Update(msg)
		m.Social = updated.(SocialModel)
		cmd = c
		back = m.Social.IsBackRequested()

	case ScreenSearch:
		updated, c := m.Search.Update(msg)
		m.Search = updated.(SearchModel)
		cmd = c
		back = m.Search.IsBackRequested()

	case ScreenChat:
		updated, c := m.Chat.Update(msg)
		m.Chat = updated.(ChatModel)
		cmd = c
		back = m.Chat.IsBackRequested()

	case ScreenCopyPaste:
		updated, c := m.CopyPaste.Update(msg)
		m.CopyPaste = updated.(CopyPasteModel)
		cmd = c
		back = m.CopyPaste.IsBackRequested()
	}

	if back {
		cmd = m.transitionTo(ScreenHome)
	}
	return m, cmd
}

// form returns a pointer to the form model backing screen.
func (m *AppModel) form(screen Screen) *FormModel {
	switch screen {
	case ScreenPurchase:
		return &m.Purchase
	case ScreenProfile:
		return &m.Profile
	case ScreenReview:
		return &m.Review
	case ScreenSettings:
		return &m.Settings
	default:
		return &m.Calendar
	}
}

// transitionTo switches screens. Screens other than home start fresh.
func (m *AppModel) transitionTo(screen Screen) tea.Cmd {
	logging.LogScreenChange(string(m.CurrentScreen), string(screen))
	m.openScreen(screen)
	m.resizeAll(tea.WindowSizeMsg{Width: m.Width, Height: m.Height})
	return m.initScreen(screen)
}

func (m *AppModel) openScreen(screen Screen) {
	m.PreviousScreen = m.CurrentScreen
	m.CurrentScreen = screen

	reg := m.Registry
	switch screen {
	case ScreenPurchase:
		m.Purchase = NewFormModel(PurchaseForm())
	case ScreenProfile:
		m.Profile = NewFormModel(ProfileForm(reg.Limits.ProfileBio))
	case ScreenReview:
		m.Review = NewFormModel(ReviewForm(reg.Limits.ReviewTitle, reg.Limits.ReviewBody))
	case ScreenSettings:
		m.Settings = NewFormModel(SettingsForm(reg.Limits.SettingsBio))
	case ScreenCalendar:
		m.Calendar = NewFormModel(EventForm())
	case ScreenSocial:
		m.Social = NewSocialModel(reg.Suggestions.Hashtags, reg.Suggestions.Mentions, reg.Limits.Post)
	case ScreenSearch:
		m.Search = NewSearchModel(reg)
	case ScreenChat:
		m.Chat = NewChatModel()
	case ScreenCopyPaste:
		m.CopyPaste = NewCopyPasteModel()
	}
}

func (m AppModel) initScreen(screen Screen) tea.Cmd {
	switch screen {
	case ScreenPurchase, ScreenProfile, ScreenReview, ScreenSettings, ScreenCalendar:
		f := m.form(screen)
		return f.Init()
	case ScreenSocial:
		return m.Social.Init()
	case ScreenSearch:
		return m.Search.Init()
	case ScreenChat:
		return m.Chat.Init()
	case ScreenCopyPaste:
		return m.CopyPaste.Init()
	default:
		return m.Home.Init()
	}
}

// resizeAll propagates terminal dimensions to home and the active screen.
// Other screens are rebuilt and sized when they are opened.
func (m *AppModel) resizeAll(msg tea.WindowSizeMsg) {
	m.Home = m.Home.Resize(msg.Width, msg.Height)

	switch m.CurrentScreen {
	case ScreenPurchase, ScreenProfile, ScreenReview, ScreenSettings, ScreenCalendar:
		f := m.form(m.CurrentScreen)
		f.Width, f.Height = msg.Width, msg.Height
	case ScreenSocial:
		m.Social = m.Social.Resize(msg.Width, msg.Height)
	case ScreenSearch:
		m.Search.Width, m.Search.Height = msg.Width, msg.Height
	case ScreenChat:
		m.Chat = m.Chat.Resize(msg.Width, msg.Height)
	case ScreenCopyPaste:
		m.CopyPaste = m.CopyPaste.Resize(msg.Width, msg.Height)
	}
}

// View renders the current screen.
// Each screen handles its own container using RenderApplicationContainer().
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenHome:
		return m.Home.View()
	case ScreenPurchase, ScreenProfile, ScreenReview, ScreenSettings, ScreenCalendar:
		return m.form(m.CurrentScreen).View()
	case ScreenSocial:
		return m.Social.View()
	case ScreenSearch:
		return m.Search.View()
	case ScreenChat:
		return m.Chat.View()
	case ScreenCopyPaste:
		return m.CopyPaste.View()
	default:
		return "Unknown screen"
	}
}
