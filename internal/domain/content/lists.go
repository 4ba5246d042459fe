package content

import "time"

// nowMillis is swapped out in tests.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// nextTimeID returns a millisecond-timestamp id that does not collide with any
// id already in use. Collisions (two entities created in the same millisecond)
// are resolved by bumping until free.
func nextTimeID(used []int64) int64 {
	id := nowMillis()
	for containsID(used, id) {
		id++
	}
	return id
}

// nextSequentialID returns max(used)+1, starting at 1 for an empty list.
func nextSequentialID(used []int64) int64 {
	var max int64
	for _, id := range used {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func containsID(used []int64, id int64) bool {
	for _, u := range used {
		if u == id {
			return true
		}
	}
	return false
}

// AddMember appends a new member with a freshly generated time-based id and
// returns the assigned id.
func (d *TeamDocument) AddMember(m TeamMember) int64 {
	m.ID = nextTimeID(d.memberIDs())
	d.Members = append(d.Members, m)
	return m.ID
}

// UpsertMember replaces the member with a matching id, or appends m as a new
// member (generating an id if it has none). Returns the member's id.
func (d *TeamDocument) UpsertMember(m TeamMember) int64 {
	for i := range d.Members {
		if d.Members[i].ID == m.ID {
			d.Members[i] = m
			return m.ID
		}
	}
	if m.ID == 0 {
		return d.AddMember(m)
	}
	d.Members = append(d.Members, m)
	return m.ID
}

// RemoveMember deletes the member with the given id, reporting whether a
// member was removed. All other members are left untouched.
func (d *TeamDocument) RemoveMember(id int64) bool {
	for i := range d.Members {
		if d.Members[i].ID == id {
			d.Members = append(d.Members[:i], d.Members[i+1:]...)
			return true
		}
	}
	return false
}

func (d *TeamDocument) memberIDs() []int64 {
	ids := make([]int64, len(d.Members))
	for i, m := range d.Members {
		ids[i] = m.ID
	}
	return ids
}

// AddProject appends a new project. Project ids are sequential (max+1) rather
// than time-based, matching what the public site links against.
func (d *ProjectsDocument) AddProject(p Project) int64 {
	p.ID = nextSequentialID(d.projectIDs())
	d.Projects = append(d.Projects, p)
	return p.ID
}

// UpsertProject replaces the project with a matching id, or appends p as a new
// project. Returns the project's id.
func (d *ProjectsDocument) UpsertProject(p Project) int64 {
	for i := range d.Projects {
		if d.Projects[i].ID == p.ID {
			d.Projects[i] = p
			return p.ID
		}
	}
	if p.ID == 0 {
		return d.AddProject(p)
	}
	d.Projects = append(d.Projects, p)
	return p.ID
}

// RemoveProject deletes the project with the given id.
func (d *ProjectsDocument) RemoveProject(id int64) bool {
	for i := range d.Projects {
		if d.Projects[i].ID == id {
			d.Projects = append(d.Projects[:i], d.Projects[i+1:]...)
			return true
		}
	}
	return false
}

func (d *ProjectsDocument) projectIDs() []int64 {
	ids := make([]int64, len(d.Projects))
	for i, p := range d.Projects {
		ids[i] = p.ID
	}
	return ids
}

// AddItem appends a new FAQ item with a time-based id.
func (d *FAQDocument) AddItem(item FAQItem) int64 {
	item.ID = nextTimeID(d.itemIDs())
	d.FAQItems = append(d.FAQItems, item)
	return item.ID
}

// UpsertItem replaces the FAQ item with a matching id, or appends it as new.
func (d *FAQDocument) UpsertItem(item FAQItem) int64 {
	for i := range d.FAQItems {
		if d.FAQItems[i].ID == item.ID {
			d.FAQItems[i] = item
			return item.ID
		}
	}
	if item.ID == 0 {
		return d.AddItem(item)
	}
	d.FAQItems = append(d.FAQItems, item)
	return item.ID
}

// RemoveItem deletes the FAQ item with the given id.
func (d *FAQDocument) RemoveItem(id int64) bool {
	for i := range d.FAQItems {
		if d.FAQItems[i].ID == id {
			d.FAQItems = append(d.FAQItems[:i], d.FAQItems[i+1:]...)
			return true
		}
	}
	return false
}

func (d *FAQDocument) itemIDs() []int64 {
	ids := make([]int64, len(d.FAQItems))
	for i, item := range d.FAQItems {
		ids[i] = item.ID
	}
	return ids
}
