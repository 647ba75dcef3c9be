package service

import (
	"context"
	"sort"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"gorm.io/gorm"

	"github.com/y-inoue-koma/club-activity-manager/internal/model"
)

// In-memory repository fakes backed by maps, keyed by id. Each mock
// implements just enough of the repository contract for the services
// under test.

// ── users ──

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[uint]*model.User{}, nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = m.nextID
	m.nextID++
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) UpdateLastSignedIn(_ context.Context, id uint, at time.Time) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.LastSignedIn = at
	return nil
}

// ── members ──

type mockMemberRepo struct {
	members map[uint]*model.Member
	nextID  uint
}

func newMockMemberRepo() *mockMemberRepo {
	return &mockMemberRepo{members: map[uint]*model.Member{}, nextID: 1}
}

func (m *mockMemberRepo) add(member model.Member) *model.Member {
	if member.ID == 0 {
		member.ID = m.nextID
		m.nextID++
	} else if member.ID >= m.nextID {
		m.nextID = member.ID + 1
	}
	if member.Status == "" {
		member.Status = model.MemberStatusActive
	}
	m.members[member.ID] = &member
	return &member
}

func (m *mockMemberRepo) Create(_ context.Context, member *model.Member) error {
	created := m.add(*member)
	member.ID = created.ID
	return nil
}

func (m *mockMemberRepo) GetByID(_ context.Context, id uint) (*model.Member, error) {
	member, ok := m.members[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *member
	return &copied, nil
}

func (m *mockMemberRepo) GetByUserID(_ context.Context, userID uint) (*model.Member, error) {
	for _, member := range m.members {
		if member.UserID != nil && *member.UserID == userID {
			copied := *member
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMemberRepo) List(_ context.Context, activeOnly bool) ([]model.Member, error) {
	out := []model.Member{}
	for _, member := range m.members {
		if activeOnly && member.Status != model.MemberStatusActive {
			continue
		}
		out = append(out, *member)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Grade != out[j].Grade {
			return out[i].Grade < out[j].Grade
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *mockMemberRepo) Update(_ context.Context, member *model.Member) error {
	if _, ok := m.members[member.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *member
	m.members[member.ID] = &copied
	return nil
}

func (m *mockMemberRepo) Retire(_ context.Context, id uint) error {
	member, ok := m.members[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	member.Status = model.MemberStatusRetired
	return nil
}

// ── schedules ──

type mockScheduleRepo struct {
	schedules map[uint]*model.Schedule
	nextID    uint
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{schedules: map[uint]*model.Schedule{}, nextID: 1}
}

func (m *mockScheduleRepo) Create(_ context.Context, schedule *model.Schedule) error {
	schedule.ID = m.nextID
	m.nextID++
	copied := *schedule
	m.schedules[schedule.ID] = &copied
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id uint) (*model.Schedule, error) {
	sc, ok := m.schedules[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *sc
	return &copied, nil
}

func (m *mockScheduleRepo) List(_ context.Context, from, to string) ([]model.Schedule, error) {
	out := []model.Schedule{}
	for _, sc := range m.schedules {
		if from != "" && sc.EventDate < from {
			continue
		}
		if to != "" && sc.EventDate > to {
			continue
		}
		out = append(out, *sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate < out[j].EventDate })
	return out, nil
}

func (m *mockScheduleRepo) ListByDate(_ context.Context, date string) ([]model.Schedule, error) {
	out := []model.Schedule{}
	for _, sc := range m.schedules {
		if sc.EventDate == date {
			out = append(out, *sc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockScheduleRepo) Update(_ context.Context, schedule *model.Schedule) error {
	if _, ok := m.schedules[schedule.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *schedule
	m.schedules[schedule.ID] = &copied
	return nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.schedules[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.schedules, id)
	return nil
}

// ── player records ──

type mockRecordRepo struct {
	records map[uint]*model.PlayerRecord
	nextID  uint
}

func newMockRecordRepo() *mockRecordRepo {
	return &mockRecordRepo{records: map[uint]*model.PlayerRecord{}, nextID: 1}
}

func (m *mockRecordRepo) Create(_ context.Context, record *model.PlayerRecord) error {
	record.ID = m.nextID
	m.nextID++
	copied := *record
	m.records[record.ID] = &copied
	return nil
}

func (m *mockRecordRepo) GetByID(_ context.Context, id uint) (*model.PlayerRecord, error) {
	r, ok := m.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *r
	return &copied, nil
}

func (m *mockRecordRepo) ListByMember(_ context.Context, memberID uint, from, to string) ([]model.PlayerRecord, error) {
	out := []model.PlayerRecord{}
	for _, r := range m.records {
		if r.MemberID != memberID {
			continue
		}
		if from != "" && r.RecordDate < from {
			continue
		}
		if to != "" && r.RecordDate > to {
			continue
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordDate < out[j].RecordDate })
	return out, nil
}

func (m *mockRecordRepo) Update(_ context.Context, record *model.PlayerRecord) error {
	if _, ok := m.records[record.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *record
	m.records[record.ID] = &copied
	return nil
}

func (m *mockRecordRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.records[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *mockRecordRepo) Summarize(_ context.Context, memberID uint) (*model.RecordSummary, error) {
	sum := &model.RecordSummary{}
	for _, r := range m.records {
		if r.MemberID != memberID {
			continue
		}
		sum.GamesCount++
		sum.TotalAtBats += r.AtBats
		sum.TotalHits += r.Hits
		sum.TotalDoubles += r.Doubles
		sum.TotalTriples += r.Triples
		sum.TotalHomeRuns += r.HomeRuns
		sum.TotalRBIs += r.RBIs
		sum.TotalRuns += r.Runs
		sum.TotalStrikeouts += r.Strikeouts
		sum.TotalWalks += r.Walks
		sum.TotalStolenBases += r.StolenBases
		sum.TotalInningsPitched += r.InningsPitched
		sum.TotalEarnedRuns += r.EarnedRuns
		sum.TotalPitchStrikeouts += r.PitchStrikeouts
		sum.TotalPitchWalks += r.PitchWalks
		sum.TotalHitsAllowed += r.HitsAllowed
		sum.TotalWins += r.Wins
		sum.TotalLosses += r.Losses
	}
	return sum, nil
}

// ── absences ──

type mockAbsenceRepo struct {
	absences map[uint]*model.Absence
	nextID   uint
}

func newMockAbsenceRepo() *mockAbsenceRepo {
	return &mockAbsenceRepo{absences: map[uint]*model.Absence{}, nextID: 1}
}

func (m *mockAbsenceRepo) Create(_ context.Context, absence *model.Absence) error {
	absence.ID = m.nextID
	m.nextID++
	copied := *absence
	m.absences[absence.ID] = &copied
	return nil
}

func (m *mockAbsenceRepo) GetByID(_ context.Context, id uint) (*model.Absence, error) {
	a, ok := m.absences[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (m *mockAbsenceRepo) List(_ context.Context, scheduleID, memberID *uint) ([]model.Absence, error) {
	out := []model.Absence{}
	for _, a := range m.absences {
		if scheduleID != nil && (a.ScheduleID == nil || *a.ScheduleID != *scheduleID) {
			continue
		}
		if memberID != nil && a.MemberID != *memberID {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockAbsenceRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	a, ok := m.absences[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	return nil
}

// ── stat snapshots ──

type mockBattingRepo struct {
	stats []model.BattingStat
}

func (m *mockBattingRepo) ListAll(_ context.Context) ([]model.BattingStat, error) {
	return append([]model.BattingStat{}, m.stats...), nil
}

func (m *mockBattingRepo) ListByMember(_ context.Context, memberID uint) ([]model.BattingStat, error) {
	out := []model.BattingStat{}
	for _, st := range m.stats {
		if st.MemberID == memberID {
			out = append(out, st)
		}
	}
	return out, nil
}

type mockPitchingRepo struct {
	stats []model.PitchingStat
}

func (m *mockPitchingRepo) ListAll(_ context.Context) ([]model.PitchingStat, error) {
	return append([]model.PitchingStat{}, m.stats...), nil
}

func (m *mockPitchingRepo) ListByMember(_ context.Context, memberID uint) ([]model.PitchingStat, error) {
	out := []model.PitchingStat{}
	for _, st := range m.stats {
		if st.MemberID == memberID {
			out = append(out, st)
		}
	}
	return out, nil
}

type mockTeamRepo struct {
	stat *model.TeamStat
}

func (m *mockTeamRepo) Get(_ context.Context) (*model.TeamStat, error) {
	if m.stat == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *m.stat
	return &copied, nil
}

// ── velocity ──

type mockVelocityRepo struct {
	pitch    []model.PitchVelocity
	exit     []model.ExitVelocity
	pulldown []model.PulldownVelocity
}

func (m *mockVelocityRepo) CreatePitch(_ context.Context, v *model.PitchVelocity) error {
	v.ID = uint(len(m.pitch) + 1)
	m.pitch = append(m.pitch, *v)
	return nil
}

func (m *mockVelocityRepo) CreateExit(_ context.Context, v *model.ExitVelocity) error {
	v.ID = uint(len(m.exit) + 1)
	m.exit = append(m.exit, *v)
	return nil
}

func (m *mockVelocityRepo) CreatePulldown(_ context.Context, v *model.PulldownVelocity) error {
	v.ID = uint(len(m.pulldown) + 1)
	m.pulldown = append(m.pulldown, *v)
	return nil
}

func (m *mockVelocityRepo) ListPitch(_ context.Context) ([]model.PitchVelocity, error) {
	return append([]model.PitchVelocity{}, m.pitch...), nil
}

func (m *mockVelocityRepo) ListExit(_ context.Context) ([]model.ExitVelocity, error) {
	return append([]model.ExitVelocity{}, m.exit...), nil
}

func (m *mockVelocityRepo) ListPulldown(_ context.Context) ([]model.PulldownVelocity, error) {
	return append([]model.PulldownVelocity{}, m.pulldown...), nil
}

func (m *mockVelocityRepo) PitchByMember(_ context.Context, memberID uint) ([]model.PitchVelocity, error) {
	out := []model.PitchVelocity{}
	for _, v := range m.pitch {
		if v.MemberID == memberID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockVelocityRepo) ExitByMember(_ context.Context, memberID uint) ([]model.ExitVelocity, error) {
	out := []model.ExitVelocity{}
	for _, v := range m.exit {
		if v.MemberID == memberID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockVelocityRepo) PulldownByMember(_ context.Context, memberID uint) ([]model.PulldownVelocity, error) {
	out := []model.PulldownVelocity{}
	for _, v := range m.pulldown {
		if v.MemberID == memberID {
			out = append(out, v)
		}
	}
	return out, nil
}

// ── physical ──

type mockPhysicalRepo struct {
	measurements []model.PhysicalMeasurement
}

func (m *mockPhysicalRepo) Create(_ context.Context, pm *model.PhysicalMeasurement) error {
	pm.ID = uint(len(m.measurements) + 1)
	m.measurements = append(m.measurements, *pm)
	return nil
}

func (m *mockPhysicalRepo) ListByCategory(_ context.Context, category string) ([]model.PhysicalMeasurement, error) {
	out := []model.PhysicalMeasurement{}
	for _, pm := range m.measurements {
		if pm.Category == category {
			out = append(out, pm)
		}
	}
	// date then member name, same as the SQL board query
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MeasureDate != out[j].MeasureDate {
			return out[i].MeasureDate < out[j].MeasureDate
		}
		var ni, nj string
		if out[i].Member != nil {
			ni = out[i].Member.Name
		}
		if out[j].Member != nil {
			nj = out[j].Member.Name
		}
		return ni < nj
	})
	return out, nil
}

func (m *mockPhysicalRepo) ListByMember(_ context.Context, memberID uint, category string) ([]model.PhysicalMeasurement, error) {
	out := []model.PhysicalMeasurement{}
	for _, pm := range m.measurements {
		if pm.MemberID != memberID {
			continue
		}
		if category != "" && pm.Category != category {
			continue
		}
		out = append(out, pm)
	}
	return out, nil
}

// ── game results ──

type mockGameRepo struct {
	games  map[uint]*model.GameResult
	nextID uint
}

func newMockGameRepo() *mockGameRepo {
	return &mockGameRepo{games: map[uint]*model.GameResult{}, nextID: 1}
}

func (m *mockGameRepo) Create(_ context.Context, game *model.GameResult) error {
	game.ID = m.nextID
	m.nextID++
	copied := *game
	m.games[game.ID] = &copied
	return nil
}

func (m *mockGameRepo) GetByID(_ context.Context, id uint) (*model.GameResult, error) {
	g, ok := m.games[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *g
	return &copied, nil
}

func (m *mockGameRepo) List(_ context.Context) ([]model.GameResult, error) {
	out := []model.GameResult{}
	for _, g := range m.games {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GameDate < out[j].GameDate })
	return out, nil
}

func (m *mockGameRepo) Update(_ context.Context, game *model.GameResult) error {
	if _, ok := m.games[game.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *game
	m.games[game.ID] = &copied
	return nil
}

func (m *mockGameRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.games[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.games, id)
	return nil
}

// ── notifier / chat ──

type mockNotifier struct {
	titles []string
	bodies []string
	fail   bool
}

func (m *mockNotifier) Notify(_ context.Context, title, body string) error {
	if m.fail {
		return context.DeadlineExceeded
	}
	m.titles = append(m.titles, title)
	m.bodies = append(m.bodies, body)
	return nil
}

type mockChat struct {
	reply   string
	fail    bool
	prompts []string
}

func (m *mockChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if m.fail {
		return openai.ChatCompletionResponse{}, context.DeadlineExceeded
	}
	for _, msg := range req.Messages {
		m.prompts = append(m.prompts, msg.Content)
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: m.reply}},
		},
	}, nil
}

// helpers shared across service tests

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }
func ptrStr(v string) *string     { return &v }
func ptrUint(v uint) *uint        { return &v }
