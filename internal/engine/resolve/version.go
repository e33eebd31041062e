package resolve

import (
	"fmt"
	"strconv"
	"strings"
)

// ============================================================
// Version / Deprecation Resolver
// ============================================================

// GrammarVersion — версия схемы, которую понимает движок.
const GrammarVersion = "1.2.0"

type Version struct {
	Major int
	Minor int
	Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare возвращает -1/0/1.
func (v Version) Compare(o Version) int {
	pairs := [3][2]int{{v.Major, o.Major}, {v.Minor, o.Minor}, {v.Patch, o.Patch}}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// ParseVersion разбирает "1.2.3" (допустимы 1-3 компоненты и префикс "v").
func ParseVersion(s string) (Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if s == "" {
		return Version{}, fmt.Errorf("empty version")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("invalid version %q", s)
	}

	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version %q", s)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// CheckVersion сравнивает объявленную версию документа с версией
// движка. Несовместимость — всегда предупреждение, не отказ:
// пайплайн продолжает работать.
func CheckVersion(declared string) []Warning {
	if declared == "" {
		return nil
	}

	doc, err := ParseVersion(declared)
	if err != nil {
		return []Warning{{
			Kind:    WarnVersion,
			Subject: declared,
			Message: fmt.Sprintf("unparseable grammar version %q", declared),
		}}
	}

	engine, _ := ParseVersion(GrammarVersion)

	if doc.Major != engine.Major {
		return []Warning{{
			Kind:    WarnVersion,
			Subject: declared,
			Message: fmt.Sprintf("grammar version %s is incompatible with engine version %s", doc, engine),
		}}
	}

	if doc.Compare(engine) < 0 {
		return []Warning{{
			Kind:    WarnVersion,
			Subject: declared,
			Message: fmt.Sprintf("grammar version %s is older than engine version %s, some constructs may be deprecated", doc, engine),
		}}
	}

	return nil
}
