package claims

// Kind tells how a claim that may hold one string or a list of strings
// was actually encoded.
type Kind int

const (
	KindAbsent Kind = iota
	KindString
	KindList
	KindUnrecognized
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return "unrecognized"
	}
}

type Value struct {
	Kind Kind
	// Strings holds the decoded strings for KindString (one element) and
	// KindList (in claim order).
	Strings []string
	// Raw is the undecoded claim for KindUnrecognized.
	Raw any
}

// DecodeValue classifies a decoded JSON claim. null is treated as absent;
// a list is only recognized when every element is a string.
func DecodeValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{Kind: KindAbsent}
	case string:
		return Value{Kind: KindString, Strings: []string{t}}
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return Value{Kind: KindList, Strings: out}
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return Value{Kind: KindUnrecognized, Raw: v}
			}
			out = append(out, s)
		}
		return Value{Kind: KindList, Strings: out}
	default:
		return Value{Kind: KindUnrecognized, Raw: v}
	}
}

// List returns the strings of the value, never nil. Absent and
// unrecognized values yield an empty list.
func (v Value) List() []string {
	switch v.Kind {
	case KindString, KindList:
		out := make([]string, len(v.Strings))
		copy(out, v.Strings)
		return out
	default:
		return []string{}
	}
}
