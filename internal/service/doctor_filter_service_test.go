package service_test

import (
	"testing"

	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/service"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 {
	return &v
}

func names(doctors []entity.Doctor) []string {
	result := make([]string, len(doctors))
	for i, d := range doctors {
		result[i] = d.Name
	}
	return result
}

func scenarioDataset() []entity.Doctor {
	return []entity.Doctor{
		{Name: "Alice", Fees: ptr(500), Experience: ptr(3), Specialties: []string{"ENT"}},
		{Name: "Bob", Fees: ptr(200), Experience: ptr(10), Specialties: []string{"Cardiology"}},
	}
}

func TestFilterDoctors_Scenario(t *testing.T) {
	t.Parallel()

	doctors := scenarioDataset()

	assert.Equal(t, []string{"Bob", "Alice"}, names(service.FilterDoctors(doctors, entity.FilterState{SortBy: "experience"})))
	assert.Equal(t, []string{"Alice"}, names(service.FilterDoctors(doctors, entity.FilterState{Search: "ali"})))
	assert.Equal(t, []string{"Bob"}, names(service.FilterDoctors(doctors, entity.FilterState{Specialties: []string{"Cardiology"}})))
}

func TestFilterDoctors(t *testing.T) {
	t.Parallel()

	t.Run("empty state returns dataset in input order", func(t *testing.T) {
		t.Parallel()

		doctors := []entity.Doctor{{Name: "Zed"}, {Name: "Amy"}, {Name: "Kim"}}

		assert.Equal(t, doctors, service.FilterDoctors(doctors, entity.FilterState{}))
	})

	t.Run("empty or nil dataset returns empty slice", func(t *testing.T) {
		t.Parallel()

		state := entity.FilterState{Search: "a", SortBy: "fees"}

		assert.Equal(t, []entity.Doctor{}, service.FilterDoctors(nil, state))
		assert.Equal(t, []entity.Doctor{}, service.FilterDoctors([]entity.Doctor{}, state))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		t.Parallel()

		doctors := scenarioDataset()

		service.FilterDoctors(doctors, entity.FilterState{SortBy: "fees"})

		assert.Equal(t, scenarioDataset(), doctors)
	})

	t.Run("search is case-insensitive substring and skips nameless records", func(t *testing.T) {
		t.Parallel()

		doctors := []entity.Doctor{{Name: "Dr Sunita"}, {}, {Name: "Anita"}, {Name: "Bob"}}

		assert.Equal(t, []string{"Dr Sunita", "Anita"}, names(service.FilterDoctors(doctors, entity.FilterState{Search: "NITA"})))
	})

	t.Run("consultation type is case-insensitive equality", func(t *testing.T) {
		t.Parallel()

		doctors := []entity.Doctor{
			{Name: "A", ConsultationType: "Video"},
			{Name: "B", ConsultationType: "clinic"},
			{Name: "C"},
			{Name: "D", ConsultationType: "video consult"},
		}

		assert.Equal(t, []string{"A"}, names(service.FilterDoctors(doctors, entity.FilterState{ConsultType: "video"})))
	})

	t.Run("specialties use OR semantics", func(t *testing.T) {
		t.Parallel()

		doctors := []entity.Doctor{
			{Name: "A", Specialties: []string{"Cardiology", "ENT"}},
			{Name: "B", Specialties: []string{"Dentist"}},
			{Name: "C"},
			{Name: "D", Specialties: []string{"Neurology"}},
		}

		filtered := service.FilterDoctors(doctors, entity.FilterState{Specialties: []string{"ENT", "Neurology"}})

		assert.Equal(t, []string{"A", "D"}, names(filtered))
	})

	t.Run("fees sort is ascending, stable, with missing fee as zero", func(t *testing.T) {
		t.Parallel()

		doctors := []entity.Doctor{
			{Name: "A", Fees: ptr(300)},
			{Name: "B", Fees: ptr(100)},
			{Name: "C", Fees: ptr(300)},
			{Name: "D"},
			{Name: "E", Fees: ptr(100)},
		}

		sorted := service.FilterDoctors(doctors, entity.FilterState{SortBy: "fees"})

		assert.Equal(t, []string{"D", "B", "E", "A", "C"}, names(sorted))
	})

	t.Run("experience sort is descending and stable", func(t *testing.T) {
		t.Parallel()

		doctors := []entity.Doctor{
			{Name: "A", Experience: ptr(5)},
			{Name: "B"},
			{Name: "C", Experience: ptr(12)},
			{Name: "D", Experience: ptr(5)},
		}

		sorted := service.FilterDoctors(doctors, entity.FilterState{SortBy: "experience"})

		assert.Equal(t, []string{"C", "A", "D", "B"}, names(sorted))
	})

	t.Run("unknown sort key leaves order unchanged", func(t *testing.T) {
		t.Parallel()

		doctors := scenarioDataset()

		assert.Equal(t, []string{"Alice", "Bob"}, names(service.FilterDoctors(doctors, entity.FilterState{SortBy: "rating"})))
	})

	t.Run("search then sort", func(t *testing.T) {
		t.Parallel()

		doctors := []entity.Doctor{
			{Name: "Anna", Fees: ptr(900)},
			{Name: "Bob", Fees: ptr(50)},
			{Name: "Hannah", Fees: ptr(400)},
		}

		sorted := service.FilterDoctors(doctors, entity.FilterState{Search: "ann", SortBy: "fees"})

		assert.Equal(t, []string{"Hannah", "Anna"}, names(sorted))
	})

	t.Run("all stages combined", func(t *testing.T) {
		t.Parallel()

		doctors := []entity.Doctor{
			{Name: "Ravi Kumar", ConsultationType: "clinic", Specialties: []string{"ENT"}, Experience: ptr(4)},
			{Name: "Ravi Shah", ConsultationType: "video", Specialties: []string{"ENT"}, Experience: ptr(20)},
			{Name: "Ravindra", ConsultationType: "clinic", Specialties: []string{"Dentist", "ENT"}, Experience: ptr(9)},
			{Name: "Meera", ConsultationType: "clinic", Specialties: []string{"ENT"}, Experience: ptr(30)},
			{Name: "Ravi Iyer", ConsultationType: "clinic", Specialties: []string{"Neurology"}, Experience: ptr(15)},
		}

		state := entity.FilterState{
			Search:      "ravi",
			ConsultType: "clinic",
			Specialties: []string{"ENT"},
			SortBy:      "experience",
		}

		assert.Equal(t, []string{"Ravindra", "Ravi Kumar"}, names(service.FilterDoctors(doctors, state)))
	})
}

func TestSpecialtyOptions(t *testing.T) {
	t.Parallel()

	doctors := []entity.Doctor{
		{Specialties: []string{"ENT", "Cardiology"}},
		{},
		{Specialties: []string{"Dentist", "ENT"}},
		{Specialties: []string{"Cardiology"}},
	}

	assert.Equal(t, []string{"ENT", "Cardiology", "Dentist"}, service.SpecialtyOptions(doctors))
	assert.Equal(t, []string{}, service.SpecialtyOptions(nil))
}

func TestSuggestDoctorNames(t *testing.T) {
	t.Parallel()

	doctors := []entity.Doctor{
		{Name: "Arjun"}, {Name: "Bob"}, {Name: "Karan"}, {Name: "Aryan"}, {Name: "Tarun"},
	}

	assert.Equal(t, []string{"Arjun", "Karan", "Aryan"}, service.SuggestDoctorNames(doctors, "ar", 3))
	assert.Equal(t, []string{"Bob"}, service.SuggestDoctorNames(doctors, "BO", 3))
	assert.Empty(t, service.SuggestDoctorNames(doctors, "", 3))
	assert.Empty(t, service.SuggestDoctorNames(doctors, "zz", 3))
}
