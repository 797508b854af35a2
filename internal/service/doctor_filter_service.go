package service

import (
	"slices"
	"strings"

	"go-doctor-directory/internal/domain/entity"
)

// filterStage narrows or reorders the candidate list
type filterStage func([]entity.Doctor) []entity.Doctor

// FilterDoctors derives the displayed list from the full dataset and state.
//
// Only stages whose state field is set are applied, always in this order:
// search, consultation type, specialties, sort. The input slice is never
// modified and the result is never nil.
func FilterDoctors(doctors []entity.Doctor, state entity.FilterState) []entity.Doctor {
	if len(doctors) == 0 {
		return []entity.Doctor{}
	}

	result := slices.Clone(doctors)
	for _, stage := range activeStages(state) {
		result = stage(result)
	}
	return result
}

func activeStages(state entity.FilterState) []filterStage {
	stages := make([]filterStage, 0, 4)

	if state.Search != "" {
		stages = append(stages, searchStage(state.Search))
	}
	if state.ConsultType != "" {
		stages = append(stages, consultTypeStage(state.ConsultType))
	}
	if len(state.Specialties) > 0 {
		stages = append(stages, specialtyStage(state.Specialties))
	}
	if state.SortBy != "" {
		stages = append(stages, sortStage(state.SortBy))
	}

	return stages
}

func searchStage(term string) filterStage {
	needle := strings.ToLower(term)
	return func(doctors []entity.Doctor) []entity.Doctor {
		return keep(doctors, func(d *entity.Doctor) bool {
			return d.Name != "" && strings.Contains(strings.ToLower(d.Name), needle)
		})
	}
}

func consultTypeStage(consultType string) filterStage {
	return func(doctors []entity.Doctor) []entity.Doctor {
		return keep(doctors, func(d *entity.Doctor) bool {
			return d.ConsultationType != "" && strings.EqualFold(d.ConsultationType, consultType)
		})
	}
}

func specialtyStage(specialties []string) filterStage {
	selected := make(map[string]struct{}, len(specialties))
	for _, s := range specialties {
		selected[s] = struct{}{}
	}
	return func(doctors []entity.Doctor) []entity.Doctor {
		return keep(doctors, func(d *entity.Doctor) bool {
			return d.HasAnySpecialty(selected)
		})
	}
}

// sortStage leaves the order unchanged for unrecognized keys
func sortStage(sortBy string) filterStage {
	return func(doctors []entity.Doctor) []entity.Doctor {
		switch sortBy {
		case entity.SortByFees:
			slices.SortStableFunc(doctors, func(a, b entity.Doctor) int {
				return compareFloat(a.FeeOrZero(), b.FeeOrZero())
			})
		case entity.SortByExperience:
			slices.SortStableFunc(doctors, func(a, b entity.Doctor) int {
				return compareFloat(b.ExperienceOrZero(), a.ExperienceOrZero())
			})
		}
		return doctors
	}
}

func keep(doctors []entity.Doctor, match func(*entity.Doctor) bool) []entity.Doctor {
	result := make([]entity.Doctor, 0, len(doctors))
	for i := range doctors {
		if match(&doctors[i]) {
			result = append(result, doctors[i])
		}
	}
	return result
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SpecialtyOptions returns every distinct specialty in the dataset, in order of first occurrence
func SpecialtyOptions(doctors []entity.Doctor) []string {
	seen := make(map[string]struct{})
	options := make([]string, 0)
	for _, doctor := range doctors {
		for _, specialty := range doctor.Specialties {
			if _, ok := seen[specialty]; ok {
				continue
			}
			seen[specialty] = struct{}{}
			options = append(options, specialty)
		}
	}
	return options
}

// SuggestDoctorNames returns up to limit names matching the search input, in dataset order
func SuggestDoctorNames(doctors []entity.Doctor, input string, limit int) []string {
	suggestions := make([]string, 0, limit)
	if input == "" || limit <= 0 {
		return suggestions
	}

	for _, doctor := range searchStage(input)(doctors) {
		suggestions = append(suggestions, doctor.Name)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions
}
