package repository

import "github.com/carehome-dev/care-journal/backend/internal/domain"

func (r *Repository) GetUsers() ([]domain.User, error) {
	users := []domain.User{}
	found, err := r.getCollection(KeyUsers, &users)
	if err != nil {
		return nil, err
	}
	if !found {
		users = SeedUsers()
		if err := r.SaveUsers(users); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (r *Repository) SaveUsers(users []domain.User) error {
	return r.saveCollection(KeyUsers, users)
}

func (r *Repository) GetCategories() ([]domain.Category, error) {
	categories := []domain.Category{}
	found, err := r.getCollection(KeyCategories, &categories)
	if err != nil {
		return nil, err
	}
	if !found {
		categories = SeedCategories()
		if err := r.SaveCategories(categories); err != nil {
			return nil, err
		}
	}
	return categories, nil
}

func (r *Repository) SaveCategories(categories []domain.Category) error {
	return r.saveCollection(KeyCategories, categories)
}

func (r *Repository) GetShifts() ([]domain.Shift, error) {
	shifts := []domain.Shift{}
	if _, err := r.getCollection(KeyShifts, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *Repository) SaveShifts(shifts []domain.Shift) error {
	return r.saveCollection(KeyShifts, shifts)
}

func (r *Repository) GetMessages() ([]domain.Message, error) {
	messages := []domain.Message{}
	if _, err := r.getCollection(KeyMessages, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *Repository) SaveMessages(messages []domain.Message) error {
	return r.saveCollection(KeyMessages, messages)
}

func (r *Repository) GetJournalEntries() ([]domain.JournalEntry, error) {
	entries := []domain.JournalEntry{}
	if _, err := r.getCollection(KeyJournal, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *Repository) SaveJournalEntries(entries []domain.JournalEntry) error {
	return r.saveCollection(KeyJournal, entries)
}

func (r *Repository) GetSchedule() ([]domain.ScheduleEntry, error) {
	schedule := []domain.ScheduleEntry{}
	if _, err := r.getCollection(KeySchedule, &schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (r *Repository) SaveSchedule(schedule []domain.ScheduleEntry) error {
	return r.saveCollection(KeySchedule, schedule)
}
