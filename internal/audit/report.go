package audit

import (
	"bytes"
	"encoding/json"

	"tasnim.dev/aws-iam-audit/internal/aws/iam"
)

// Permission pairs a policy ARN with the statements of its default version.
type Permission struct {
	Policy      string         `json:"policy"`
	Permissions iam.Statements `json:"permissions"`
}

// Record is the audit result for one user.
type Record struct {
	PoliciesDirectlyAttachedToUser []string     `json:"policiesDirectlyAttachedToUser"`
	GroupsAssignedToUser           []string     `json:"groupsAssignedToUser"`
	PoliciesAttachedFromGroups     []string     `json:"policiesAttachedFromGroups"`
	Permissions                    []Permission `json:"permissions"`
}

func newRecord() *Record {
	return &Record{
		PoliciesDirectlyAttachedToUser: []string{},
		GroupsAssignedToUser:           []string{},
		PoliciesAttachedFromGroups:     []string{},
		Permissions:                    []Permission{},
	}
}

// Report maps user names to their records and remembers enumeration order.
type Report struct {
	order   []string
	records map[string]*Record
}

func NewReport() *Report {
	return &Report{records: make(map[string]*Record)}
}

// Add stores rec under userName. Adding the same user again replaces the
// record but keeps its original position.
func (r *Report) Add(userName string, rec *Record) {
	if _, ok := r.records[userName]; !ok {
		r.order = append(r.order, userName)
	}
	r.records[userName] = rec
}

func (r *Report) Record(userName string) (*Record, bool) {
	rec, ok := r.records[userName]
	return rec, ok
}

// Users returns user names in the order they were enumerated.
func (r *Report) Users() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Report) Len() int {
	return len(r.order)
}

// MarshalJSON encodes the report as a single object keyed by user name,
// with keys in enumeration order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.records[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
