package changelog

// Kind is the closed set of commit-message tags that mark a line as
// changelog-worthy.
type Kind string

const (
	KindFeature        Kind = "feature"
	KindFix            Kind = "fix"
	KindRevert         Kind = "revert"
	KindImprovement    Kind = "improvement"
	KindRefactor       Kind = "refactor"
	KindDevFeature     Kind = "dev-feature"
	KindDevFix         Kind = "dev-fix"
	KindDevImprovement Kind = "dev-improvement"
)

// kinds lists every recognized tag in match order. The first marker that
// matches a line wins.
var kinds = []Kind{
	KindFeature,
	KindFix,
	KindRevert,
	KindImprovement,
	KindRefactor,
	KindDevFeature,
	KindDevFix,
	KindDevImprovement,
}

// Marker returns the bracketed tag form, e.g. "[feature]".
func (k Kind) Marker() string {
	return "[" + string(k) + "]"
}

// IsDev reports whether the kind is a development-only tag, excluded from
// production-facing changelogs.
func (k Kind) IsDev() bool {
	switch k {
	case KindDevFeature, KindDevFix, KindDevImprovement:
		return true
	default:
		return false
	}
}

// Entry is a single classified changelog line. Text is the normalized,
// marker-including line beginning with "- ".
type Entry struct {
	Kind Kind
	Text string
}

// Kinds returns the recognized tags in their match order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}
