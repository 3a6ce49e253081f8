package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Configs  *CycleConfigRepository
	Symptoms *SymptomRepository
	Hormones *HormoneRepository
	Moods    *MoodRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Configs:  NewCycleConfigRepository(database),
		Symptoms: NewSymptomRepository(database),
		Hormones: NewHormoneRepository(database),
		Moods:    NewMoodRepository(database),
	}
}
