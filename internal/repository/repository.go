package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	User     UserRepository
	Member   MemberRepository
	Schedule ScheduleRepository
	Menu     PracticeMenuRepository
	Record   PlayerRecordRepository
	Absence  AbsenceRepository
	Batting  BattingStatRepository
	Pitching PitchingStatRepository
	Velocity VelocityRepository
	Physical PhysicalRepository
	Game     GameResultRepository
	Team     TeamStatRepository
}

// NewRepository wires the GORM-backed implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:     NewUserRepo(db),
		Member:   NewMemberRepo(db),
		Schedule: NewScheduleRepo(db),
		Menu:     NewPracticeMenuRepo(db),
		Record:   NewPlayerRecordRepo(db),
		Absence:  NewAbsenceRepo(db),
		Batting:  NewBattingStatRepo(db),
		Pitching: NewPitchingStatRepo(db),
		Velocity: NewVelocityRepo(db),
		Physical: NewPhysicalRepo(db),
		Game:     NewGameResultRepo(db),
		Team:     NewTeamStatRepo(db),
	}
}
