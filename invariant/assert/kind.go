package assert

// Kind names the family an assertion belongs to.
type Kind uint8

const (
	KindDebug Kind = iota
	KindRequirement
	KindFatal
	KindPrecondition
	KindPostcondition
)

var kindNames = [...]struct {
	name  string
	label string
}{
	KindDebug:         {"Debug", "Debug"},
	KindRequirement:   {"Requirement", "Requirement"},
	KindFatal:         {"Fatal", "Fatal"},
	KindPrecondition:  {"Precondition", "Contract Violation:\nPre-condition"},
	KindPostcondition: {"Postcondition", "Contract Violation:\nPost-condition"},
}

// String returns the kind's name, used as the assertion telemetry label.
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "Unknown"
	}

	return kindNames[k].name
}

// Label returns the heading printed in front of "Assertion Failed:".
func (k Kind) Label() string {
	if int(k) >= len(kindNames) {
		return "Unknown"
	}

	return kindNames[k].label
}

// IsContract reports whether k is a pre- or post-condition.
func (k Kind) IsContract() bool {
	return k == KindPrecondition || k == KindPostcondition
}
