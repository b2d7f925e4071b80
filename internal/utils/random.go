package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/carehome-dev/care-journal/backend/internal/domain"
	"github.com/carehome-dev/care-journal/backend/internal/roster"
	"github.com/mozillazg/go-pinyin"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var digits = "0123456789"

func GenerateUsernameFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	username := ""

	for _, py := range pinyinArray {
		length := rand.Intn(len(py)) + 1
		username += py[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

// GenerateRandomPIN 生成一个 4 位数字 PIN，允许前导零。
func GenerateRandomPIN() string {
	return fmt.Sprintf("%04d", rand.Intn(10000))
}

func GenerateRandomUser() *domain.User {
	fullName := GenerateRandomChineseName()

	return &domain.User{
		ID:       domain.NewID(),
		Name:     fullName,
		Username: GenerateUsernameFromChineseName(fullName),
		Role:     domain.RoleStaff,
		Active:   true,
		PIN:      GenerateRandomPIN(),
	}
}

// GenerateRandomSlots 生成一组互不重叠的班次模板，用于随机排班数据。
func GenerateRandomSlots() []roster.Slot {
	slotsNum := rand.Intn(3) + 1
	slots := make([]roster.Slot, slotsNum)
	hoursPerSlot := 12 / slotsNum

	for i := range slots {
		startHour := 7 + i*hoursPerSlot
		endHour := startHour + rand.Intn(hoursPerSlot) + 1

		slots[i] = roster.Slot{
			Start: fmt.Sprintf("%02d:00", startHour),
			End:   fmt.Sprintf("%02d:00", endHour),
		}
	}

	return slots
}

var demoNotes = []string{
	"Resident had a calm afternoon.",
	"Medication given as scheduled.",
	"Lunch finished completely.",
	"Short walk in the garden.",
	"Slept well during the night round.",
}

// GenerateRandomJournalEntry 生成一条演示用的日志条目。
func GenerateRandomJournalEntry(author *domain.User, categories []domain.Category, now time.Time) *domain.JournalEntry {
	ts := now.Add(-time.Duration(rand.Intn(7*24)) * time.Hour)

	return &domain.JournalEntry{
		ID:         domain.NewID(),
		StaffID:    author.ID,
		StaffName:  author.Name,
		Date:       ts.Format("2006-01-02"),
		Category:   categories[rand.Intn(len(categories))].Name,
		Text:       demoNotes[rand.Intn(len(demoNotes))],
		Timestamp:  ts,
		ShiftName:  domain.ShiftNameAt(ts),
		IsCritical: rand.Intn(10) == 0,
	}
}
