package game

import (
	"fmt"
	"strconv"
	"strings"
)

// OwnerKind discriminates the two combatant types.
type OwnerKind string

const (
	OwnerUser OwnerKind = "user"
	OwnerNpc  OwnerKind = "npc"
)

// OwnerRef identifies one side's controller. It replaces string-prefix
// checks on the snapshot id tag with an explicit discriminated value.
type OwnerRef struct {
	Kind OwnerKind
	ID   uint
}

// Tag renders the persisted snapshot id ("user_<id>" / "npc_<id>").
func (o OwnerRef) Tag() string {
	return fmt.Sprintf("%s_%d", o.Kind, o.ID)
}

// IsNpc reports whether the owner is computer-controlled.
func (o OwnerRef) IsNpc() bool { return o.Kind == OwnerNpc }

// UserRef builds an OwnerRef for a human player.
func UserRef(id uint) OwnerRef { return OwnerRef{Kind: OwnerUser, ID: id} }

// NpcRef builds an OwnerRef for a computer-controlled player.
func NpcRef(id uint) OwnerRef { return OwnerRef{Kind: OwnerNpc, ID: id} }

// ParseOwnerTag parses a persisted snapshot id tag back into an OwnerRef.
func ParseOwnerTag(tag string) (OwnerRef, error) {
	kind, idStr, ok := strings.Cut(tag, "_")
	if !ok {
		return OwnerRef{}, fmt.Errorf("malformed owner tag %q", tag)
	}
	if kind != string(OwnerUser) && kind != string(OwnerNpc) {
		return OwnerRef{}, fmt.Errorf("unknown owner kind %q", kind)
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return OwnerRef{}, fmt.Errorf("malformed owner id in tag %q", tag)
	}
	return OwnerRef{Kind: OwnerKind(kind), ID: uint(id)}, nil
}

// ParseOwnerKind validates a kind string coming from an API request.
func ParseOwnerKind(s string) (OwnerKind, error) {
	switch OwnerKind(s) {
	case OwnerUser:
		return OwnerUser, nil
	case OwnerNpc:
		return OwnerNpc, nil
	}
	return "", fmt.Errorf("unknown owner kind %q", s)
}
