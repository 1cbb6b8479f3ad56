package content

import "fmt"

// All returns the built-in lesson packs in menu order.
func All() []Pack {
	return []Pack{
		MotorPack(),
		BatchingPack(),
		ThermalPack(),
		GridQueuePack(),
	}
}

// ByID returns the built-in pack with the given id.
func ByID(id string) (Pack, error) {
	for _, p := range All() {
		if p.ID == id {
			return p, nil
		}
	}
	return Pack{}, fmt.Errorf("unknown lesson %q", id)
}

// IDs returns the ids of all built-in packs in menu order.
func IDs() []string {
	packs := All()
	ids := make([]string, len(packs))
	for i, p := range packs {
		ids[i] = p.ID
	}
	return ids
}
