// Package fstype holds the entity kinds, containment table and sentinel
// errors shared by the tree engine and its public re-exports.
package fstype

// Kind identifies the type of a file system entity.
type Kind uint8

const (
	KindRoot Kind = iota
	KindDrive
	KindFolder
	KindZip
	KindText
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindDrive:
		return "drive"
	case KindFolder:
		return "folder"
	case KindZip:
		return "zip"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseKind maps a creatable kind name to its Kind.
// The root kind is never creatable and is rejected like any unknown name.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "drive":
		return KindDrive, nil
	case "folder":
		return KindFolder, nil
	case "zip":
		return KindZip, nil
	case "text":
		return KindText, nil
	default:
		return 0, ErrInvalidKind
	}
}

// allowed maps each container kind to the kinds it may hold.
// Kinds absent from the table hold nothing.
var allowed = map[Kind][]Kind{
	KindRoot:   {KindDrive},
	KindDrive:  {KindFolder, KindZip, KindText},
	KindFolder: {KindFolder, KindZip, KindText},
	KindZip:    {KindFolder, KindZip, KindText},
}

// IsContainer reports whether entities of kind k own children.
func (k Kind) IsContainer() bool {
	_, ok := allowed[k]
	return ok
}

// Allows reports whether a container of kind k may hold a child of kind child.
func (k Kind) Allows(child Kind) bool {
	for _, c := range allowed[k] {
		if c == child {
			return true
		}
	}
	return false
}
