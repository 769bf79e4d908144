package cli

import (
	"bytes"
	"math/rand/v2"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/ritmo/internal/app"
	"github.com/alexanderramin/ritmo/internal/auth"
	"github.com/alexanderramin/ritmo/internal/calendar"
	"github.com/alexanderramin/ritmo/internal/mission"
	"github.com/alexanderramin/ritmo/internal/repository"
	"github.com/alexanderramin/ritmo/internal/service"
	"github.com/alexanderramin/ritmo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// noonSaoPaulo is 2026-03-14 12:00 in the reference zone.
var noonSaoPaulo = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

type testClock struct {
	mu sync.Mutex
	at time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.at
}

func (c *testClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = c.at.Add(d)
}

// testApp wires a full App backed by an in-memory DB and a session file in
// a temp dir.
func testApp(t *testing.T) (*App, *testClock) {
	t.Helper()
	database := testutil.NewTestDB(t)
	clock := &testClock{at: noonSaoPaulo}

	states := repository.NewSQLiteDailyStateRepo(database)
	logs := repository.NewSQLiteActionLogRepo(database)
	actions := service.NewActionLogger(logs, clock, nil)

	sessions := auth.NewSessionStore(filepath.Join(t.TempDir(), "session.yaml"))
	daily := service.NewDailyStateService(states, actions, clock)
	profiles := service.NewProfileService(repository.NewSQLiteProfileRepo(database), actions)

	return &App{
		State: app.NewState(sessions, profiles, daily),
		Auth: auth.NewService(repository.NewSQLiteAccountRepo(database), testutil.NewTestUoW(database), sessions,
			auth.WithHashCost(bcrypt.MinCost), auth.WithClock(clock)),
		Daily:         daily,
		Progress:      service.NewProgressService(states, logs),
		Clock:         clock,
		Messages:      mission.NewSelector(rand.New(rand.NewPCG(1, 2))),
		IsInteractive: func() bool { return false },
	}, clock
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func mustRun(t *testing.T, a *App, args ...string) string {
	t.Helper()
	out, err := executeCmd(t, a, args...)
	require.NoError(t, err, out)
	return out
}

// onboardedApp returns an app with a signed-in, onboarded user.
func onboardedApp(t *testing.T) (*App, *testClock) {
	t.Helper()
	a, clock := testApp(t)
	mustRun(t, a, "signup", "--email", "ana@example.com", "--password", "segredo1")
	mustRun(t, a, "onboard", "--name", "Ana", "--goal", "weightloss")
	return a, clock
}

// --- Accounts ---

func TestCommands_RequireSignIn(t *testing.T) {
	a, _ := testApp(t)

	for _, args := range [][]string{{"today"}, {"mission"}, {"progress"}, {"focus", "done"}} {
		_, err := executeCmd(t, a, args...)
		require.Error(t, err, args)
		assert.ErrorIs(t, err, app.ErrNotSignedIn, args)
	}
}

func TestSignupWhoamiLogout(t *testing.T) {
	a, _ := testApp(t)

	out := mustRun(t, a, "signup", "--email", "Ana@Example.com", "--password", "segredo1")
	assert.Contains(t, out, "ana@example.com")
	assert.Contains(t, out, "ritmo onboard")

	out = mustRun(t, a, "whoami")
	assert.Contains(t, out, "ana@example.com")
	assert.Contains(t, out, "2026-03-14")

	mustRun(t, a, "logout")
	assert.Contains(t, mustRun(t, a, "whoami"), "not signed in")

	out = mustRun(t, a, "login", "--email", "ana@example.com", "--password", "segredo1")
	assert.Contains(t, out, "Bem-vinda de volta")
}

func TestLogin_WrongPassword(t *testing.T) {
	a, _ := testApp(t)
	mustRun(t, a, "signup", "--email", "ana@example.com", "--password", "segredo1")

	_, err := executeCmd(t, a, "login", "--email", "ana@example.com", "--password", "errada12")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestSignup_NonInteractiveNeedsFlags(t *testing.T) {
	a, _ := testApp(t)
	_, err := executeCmd(t, a, "signup", "--email", "ana@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--password")
}

// --- Onboarding ---

func TestToday_BeforeOnboarding(t *testing.T) {
	a, _ := testApp(t)
	mustRun(t, a, "signup", "--email", "ana@example.com", "--password", "segredo1")

	_, err := executeCmd(t, a, "today")
	assert.ErrorIs(t, err, app.ErrNotOnboarded)
}

func TestOnboard_NonInteractiveNeedsName(t *testing.T) {
	a, _ := testApp(t)
	mustRun(t, a, "signup", "--email", "ana@example.com", "--password", "segredo1")

	_, err := executeCmd(t, a, "onboard", "--goal", "energy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--name")
}

func TestOnboard_RejectsUnknownGoal(t *testing.T) {
	a, _ := testApp(t)
	mustRun(t, a, "signup", "--email", "ana@example.com", "--password", "segredo1")

	_, err := executeCmd(t, a, "onboard", "--name", "Ana", "--goal", "fame")
	assert.ErrorIs(t, err, service.ErrInvalidProfile)
}

func TestOnboard_StartsCycle(t *testing.T) {
	a, _ := testApp(t)
	mustRun(t, a, "signup", "--email", "ana@example.com", "--password", "segredo1")

	out := mustRun(t, a, "onboard", "--name", "Ana", "--morning=false")
	assert.Contains(t, out, "Tudo pronto, Ana!")
	assert.Contains(t, out, "dia 1")
	assert.False(t, a.State.Profile.MorningPerson)
}

// --- Daily loop ---

func TestToday_ShowsGreetingAndMission(t *testing.T) {
	a, _ := onboardedApp(t)

	out := mustRun(t, a, "today")
	assert.Contains(t, out, "Boa tarde,")
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "Missão do dia 1: Água ao acordar")

	assert.Equal(t, out, mustRun(t, a), "bare ritmo shows today")
}

func TestMissionDone_ShowsFeedbackOnce(t *testing.T) {
	a, _ := onboardedApp(t)

	out := mustRun(t, a, "mission", "done")
	assert.Contains(t, out, "Dia 1 concluído")
	assert.True(t, a.State.MissionJustCompleted)

	out = mustRun(t, a, "mission", "done")
	assert.Contains(t, out, "já estava concluída")
	assert.False(t, a.State.MissionJustCompleted)
}

func TestMission_ViewAndList(t *testing.T) {
	a, _ := onboardedApp(t)

	out := mustRun(t, a, "mission")
	assert.Contains(t, out, "Dia 1 de 30")
	assert.Contains(t, out, "Próximos dias")

	out = mustRun(t, a, "mission", "list")
	assert.Contains(t, out, "Água ao acordar")
	assert.Contains(t, out, mission.All()[29].Title)
}

func TestNextDay_AdvancesCycleAndStreak(t *testing.T) {
	a, clock := onboardedApp(t)
	mustRun(t, a, "mission", "done")

	clock.advance(24 * time.Hour)

	out := mustRun(t, a, "today")
	assert.Contains(t, out, "Missão do dia 2")
	assert.Contains(t, out, "1 dia seguido")
	assert.Equal(t, calendar.MustParse("2026-03-15"), a.State.TodayState.StateDate)
}

func TestNextDay_MissedMissionResetsStreak(t *testing.T) {
	a, clock := onboardedApp(t)

	clock.advance(24 * time.Hour)
	mustRun(t, a, "today")

	assert.Equal(t, 2, a.State.TodayState.MissionDay)
	assert.Equal(t, 0, a.State.TodayState.Streak)
}

func TestFocusDone(t *testing.T) {
	a, _ := onboardedApp(t)

	assert.Contains(t, mustRun(t, a, "focus", "done"), "Foco concluído")
	assert.Contains(t, mustRun(t, a, "focus", "done"), "já estava feito")
	assert.Contains(t, mustRun(t, a, "today"), "Feito por hoje")
}

func TestCheckin(t *testing.T) {
	a, _ := onboardedApp(t)

	_, err := executeCmd(t, a, "checkin", "--energy", "9", "--mood", "good")
	assert.ErrorIs(t, err, service.ErrInvalidCheckIn)

	_, err = executeCmd(t, a, "checkin", "--energy", "3")
	require.Error(t, err, "mood is required")

	assert.Contains(t, mustRun(t, a, "checkin", "--energy", "4", "--mood", "good", "--note", "bem"), "Check-in registrado")
	assert.True(t, a.State.TodayState.CheckInDone)
	assert.Contains(t, mustRun(t, a, "checkin", "--energy", "2", "--mood", "low"), "já foi feito")
}

func TestNote_SetAndClear(t *testing.T) {
	a, _ := onboardedApp(t)

	mustRun(t, a, "note", "dormi", "mal")
	require.NotNil(t, a.State.TodayState.Notes)
	assert.Equal(t, "dormi mal", *a.State.TodayState.Notes)
	assert.Contains(t, mustRun(t, a, "today"), "Nota: dormi mal")

	mustRun(t, a, "note", "--clear")
	assert.Nil(t, a.State.TodayState.Notes)

	_, err := executeCmd(t, a, "note")
	assert.Error(t, err)
}

// --- Views ---

func TestProgress(t *testing.T) {
	a, _ := onboardedApp(t)
	mustRun(t, a, "mission", "done")

	out := mustRun(t, a, "progress")
	assert.Contains(t, out, "SEU PROGRESSO")
	assert.Contains(t, out, "1 de 30")
	assert.Contains(t, out, "★")
}

func TestRoutine(t *testing.T) {
	a, _ := onboardedApp(t)

	out := mustRun(t, a, "routine")
	assert.Contains(t, out, "SUA ROTINA")
	assert.Contains(t, out, "Dia de descanso ativo")
}

func TestMethod_NeedsNoAccount(t *testing.T) {
	a, _ := testApp(t)
	out := mustRun(t, a, "method")
	assert.Contains(t, out, "Hidratação Inteligente")
}

func TestProfile_SetAndShow(t *testing.T) {
	a, _ := onboardedApp(t)

	_, err := executeCmd(t, a, "profile", "set")
	require.Error(t, err)

	mustRun(t, a, "profile", "set", "--rhythm", "calm", "--name", "Ana Clara")
	out := mustRun(t, a, "profile", "show")
	assert.Contains(t, out, "Ana Clara")
	assert.Contains(t, out, "Tranquilo")
	assert.Contains(t, out, "Emagrecer")
	assert.Contains(t, out, "ana@example.com")
}

// --- Coach ---

func TestAsk_UsesProfileName(t *testing.T) {
	a, _ := onboardedApp(t)

	out := mustRun(t, a, "ask", "estou", "sem", "motivação")
	assert.Contains(t, out, "coach")
	assert.Contains(t, out, "Ana,")
}

func TestAsk_SignedOutUsesDefaultName(t *testing.T) {
	a, _ := testApp(t)

	out := mustRun(t, a, "ask", "quero", "emagrecer")
	assert.Contains(t, out, "querida,")
}

func TestChat_NeedsTerminal(t *testing.T) {
	a, _ := testApp(t)
	_, err := executeCmd(t, a, "chat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ritmo ask")
}
