package knowledge

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ResultType tells the response layer which template fits a search hit.
type ResultType string

const (
	ResultPersonal   ResultType = "personal"
	ResultSkill      ResultType = "skill"
	ResultExperience ResultType = "experience"
	ResultProject    ResultType = "project"
)

// SearchResult is one entity matched by a full-text query.
type SearchResult struct {
	Type           ResultType
	Data           any
	RelevanceScore int
	MatchedFields  []string
}

// Search scans every string field of every entity for the query,
// case-insensitive, and ranks hits by relevance. Score = number of matched
// fields, +2 per match on a name/title field, +1 per match on a
// description/bio field. Ties keep scan order. Returns an empty slice when
// nothing matches; this path never fails.
func (b *Base) Search(query string) []SearchResult {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}

	var results []SearchResult
	add := func(t ResultType, data any) {
		matches := matchFields(data, needle)
		if len(matches) == 0 {
			return
		}
		results = append(results, SearchResult{
			Type:           t,
			Data:           data,
			RelevanceScore: scoreMatches(matches),
			MatchedFields:  matches,
		})
	}

	add(ResultPersonal, b.data.PersonalInfo)
	for _, s := range b.data.Skills {
		add(ResultSkill, s)
	}
	for _, e := range b.data.Experience {
		add(ResultExperience, e)
	}
	for _, p := range b.data.Projects {
		add(ResultProject, p)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	return results
}

// matchFields walks the value recursively and returns the dotted paths of
// every string field containing the query.
func matchFields(v any, needle string) []string {
	var matches []string
	walkStrings(reflect.ValueOf(v), "", func(path, s string) {
		if strings.Contains(strings.ToLower(s), needle) {
			if path == "" {
				path = "content"
			}
			matches = append(matches, path)
		}
	})
	return matches
}

func walkStrings(v reflect.Value, path string, visit func(path, s string)) {
	switch v.Kind() {
	case reflect.String:
		visit(path, v.String())
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			walkStrings(v.Index(i), fmt.Sprintf("%s[%d]", path, i), visit)
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name := jsonFieldName(field)
			child := name
			if path != "" {
				child = path + "." + name
			}
			walkStrings(v.Field(i), child, visit)
		}
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			walkStrings(v.Elem(), path, visit)
		}
	}
}

func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	if tag == "" {
		return field.Name
	}
	return tag
}

func scoreMatches(matches []string) int {
	score := len(matches)
	for _, m := range matches {
		lower := strings.ToLower(m)
		if strings.Contains(lower, "name") || strings.Contains(lower, "title") {
			score += 2
		}
		if strings.Contains(lower, "description") || strings.Contains(lower, "bio") {
			score++
		}
	}
	return score
}
