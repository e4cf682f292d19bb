package exercises

import (
	"errors"
	"fmt"
)

var ErrInvalidFilter = errors.New("invalid filter option")

type filterKind int

const (
	filterNone filterKind = iota
	filterOrder
	filterIntensity
	filterMuscleGroup
)

// Filter narrows or orders the exercise listing. The zero value lists every
// exercise by id.
type Filter struct {
	option string
	kind   filterKind
	value  string
}

var filterOptions = map[string]Filter{
	"rating_high_low":            {kind: filterOrder, value: "rating DESC NULLS LAST, exercise_id"},
	"rating_low_high":            {kind: filterOrder, value: "rating ASC NULLS LAST, exercise_id"},
	"intensity_light":            {kind: filterIntensity, value: "Light"},
	"intensity_moderate":         {kind: filterIntensity, value: "Moderate"},
	"intensity_vigorous":         {kind: filterIntensity, value: "Vigorous"},
	"muscle_chest":               {kind: filterMuscleGroup, value: "Chest"},
	"muscle_back":                {kind: filterMuscleGroup, value: "Back"},
	"muscle_shoulders":           {kind: filterMuscleGroup, value: "Shoulders"},
	"muscle_arms":                {kind: filterMuscleGroup, value: "Arms"},
	"muscle_abdominals":          {kind: filterMuscleGroup, value: "Abdominals"},
	"muscle_lower_back":          {kind: filterMuscleGroup, value: "Lower Back"},
	"muscle_hips":                {kind: filterMuscleGroup, value: "Hips"},
	"muscle_thighs":              {kind: filterMuscleGroup, value: "Thighs"},
	"muscle_legs":                {kind: filterMuscleGroup, value: "Legs"},
	"muscle_adductors_abductors": {kind: filterMuscleGroup, value: "Adductors and Abductors"},
}

// ParseFilter maps a ?filter= option to a Filter. An empty option means no
// filter.
func ParseFilter(option string) (Filter, error) {
	if option == "" {
		return Filter{}, nil
	}
	f, ok := filterOptions[option]
	if !ok {
		return Filter{}, fmt.Errorf("%w: %s", ErrInvalidFilter, option)
	}
	f.option = option
	return f, nil
}

func (f Filter) String() string {
	return f.option
}

// clause returns the WHERE and ORDER BY parts of the listing query. Only
// the filter value is ever passed as an argument; the ORDER BY text comes
// from the fixed option table.
func (f Filter) clause() (where string, args []any, orderBy string) {
	orderBy = "exercise_id"
	switch f.kind {
	case filterOrder:
		orderBy = f.value
	case filterIntensity:
		where = "WHERE intensity = $1"
		args = []any{f.value}
	case filterMuscleGroup:
		where = "WHERE muscle_group = $1"
		args = []any{f.value}
	}
	return where, args, orderBy
}
