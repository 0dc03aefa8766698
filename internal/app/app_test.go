package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizterm/internal/question"
	"github.com/abhisek/quizterm/internal/quiz"
	"github.com/abhisek/quizterm/internal/router"
	"github.com/abhisek/quizterm/internal/screen"
	quizscreen "github.com/abhisek/quizterm/internal/screens/quiz"
	resultsscreen "github.com/abhisek/quizterm/internal/screens/results"
)

func testOptions() Options {
	return Options{
		Source: question.Static{
			{ID: "1", Question: "Pick one", Options: []string{"a", "b"}, CorrectIndex: 0},
		},
	}
}

func TestAppModel_StartsOnQuiz(t *testing.T) {
	m := newAppModel(testOptions())
	if _, ok := m.router.Active().(*quizscreen.QuizScreen); !ok {
		t.Fatalf("active = %T, want *QuizScreen", m.router.Active())
	}
	if m.Init() == nil {
		t.Error("expected Init to load questions")
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions())
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

// send feeds msg to the model and returns the message its command yields.
func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Msg) {
	t.Helper()
	next, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatalf("expected a command after %T", msg)
	}
	return next.(AppModel), cmd()
}

func TestAppModel_ResultsAndRestart(t *testing.T) {
	m := newAppModel(testOptions())

	res := quiz.Result{
		SessionID: "s1",
		Questions: []question.Question{{ID: "1", Question: "Pick one", Options: []string{"a", "b"}}},
		Answers:   []int{0},
		Score:     1,
	}
	m, msg := send(t, m, screen.ShowResultsMsg{Result: res})
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := m.router.Active().(*quizscreen.QuizScreen); !ok {
		t.Fatal("expected quiz screen to stay active until the replace is delivered")
	}

	next, _ := m.Update(replace)
	m = next.(AppModel)
	results, ok := m.router.Active().(*resultsscreen.ResultsScreen)
	if !ok {
		t.Fatalf("active = %T, want *ResultsScreen", m.router.Active())
	}
	if got := results.Report().Score; got != 1 {
		t.Errorf("score = %d, want 1", got)
	}

	// Restart from the results screen goes through the same path.
	m, msg = send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := msg.(screen.RestartMsg); !ok {
		t.Fatalf("expected RestartMsg, got %T", msg)
	}
	m, msg = send(t, m, msg)
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if _, ok := m.router.Active().(*quizscreen.QuizScreen); !ok {
		t.Fatalf("active = %T, want *QuizScreen", m.router.Active())
	}
	if cmd == nil {
		t.Error("expected the new quiz to start loading")
	}
}

func TestAppModel_View(t *testing.T) {
	m := newAppModel(testOptions())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(AppModel)

	content := m.render()
	if !strings.Contains(content, "Quiz") {
		t.Error("expected screen title in header")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	m = next.(AppModel)
	if m.render() == content {
		t.Error("expected min-size message for a tiny terminal")
	}
}
