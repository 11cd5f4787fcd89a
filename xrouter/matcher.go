package xrouter

import (
	"regexp"
	"strings"
)

// matcherFunc reports whether path matches a compiled route pattern
// and, if so, the parameters it captured.
type matcherFunc func(path string) (bool, map[string]string)

// validateParams checks captured params against a route's filters: a
// string filter is a regexp, a func(string) bool filter is run
// directly. Unrecognized filter types always fail closed.
func validateParams(params map[string]string, filters map[string]any) bool {
	for name, value := range params {
		filter, ok := filters[name]
		if !ok {
			continue
		}
		switch f := filter.(type) {
		case string:
			matched, err := regexp.MatchString(f, value)
			if err != nil || !matched {
				return false
			}
		case func(string) bool:
			if !f(value) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func filterEmptySegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// compileMatcher builds a matcherFunc for a route's Path. Segments are
// static text, ":name" (required dynamic), any segment suffixed "?"
// (optional — absent only once input runs out, so this only makes
// sense trailing the pattern), or "*name" (wildcard, must be the final
// segment, captures every remaining segment joined by "/"). A route
// with Children allows a partial match (more input segments remain
// after the pattern is satisfied), letting a nested outlet keep
// matching the rest of the path.
func compileMatcher(route *Route) matcherFunc {
	var patternSegments []string
	optional := map[int]bool{}

	for i, s := range filterEmptySegments(strings.Split(route.Path, "/")) {
		if strings.HasSuffix(s, "?") {
			patternSegments = append(patternSegments, strings.TrimSuffix(s, "?"))
			optional[i] = true
		} else {
			patternSegments = append(patternSegments, s)
		}
	}

	return func(inputPath string) (bool, map[string]string) {
		inputSegments := strings.Split(inputPath, "/")
		if len(inputSegments) > 0 && inputSegments[0] == "" {
			inputSegments = inputSegments[1:]
		}

		params := map[string]string{}

		if len(patternSegments) == 0 {
			if len(inputSegments) == 0 || (len(inputSegments) == 1 && inputSegments[0] == "") {
				return true, params
			}
			return false, nil
		}

		pi, ii := 0, 0
		for pi < len(patternSegments) {
			pseg := patternSegments[pi]

			if ii >= len(inputSegments) {
				if optional[pi] {
					pi++
					continue
				}
				return false, nil
			}
			iseg := inputSegments[ii]

			switch {
			case strings.HasPrefix(pseg, "*"):
				if pi != len(patternSegments)-1 {
					return false, nil
				}
				params[pseg[1:]] = strings.Join(inputSegments[ii:], "/")
				if !validateParams(params, route.MatchFilters) {
					return false, nil
				}
				return true, params

			case strings.HasPrefix(pseg, ":"):
				name := pseg[1:]
				params[name] = iseg
				if filter, ok := route.MatchFilters[name]; ok {
					switch f := filter.(type) {
					case string:
						if matched, _ := regexp.MatchString(f, iseg); !matched {
							return false, nil
						}
					case func(string) bool:
						if !f(iseg) {
							return false, nil
						}
					default:
						return false, nil
					}
				}
				pi++
				ii++

			default:
				if pseg != iseg {
					return false, nil
				}
				pi++
				ii++
			}
		}

		if pi != len(patternSegments) {
			return false, nil
		}
		if len(route.Children) == 0 && ii != len(inputSegments) {
			return false, nil
		}
		if !validateParams(params, route.MatchFilters) {
			return false, nil
		}
		return true, params
	}
}
