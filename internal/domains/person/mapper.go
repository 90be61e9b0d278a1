package person

// ToDTO copies an entity into a DTO without links.
func ToDTO(p Person) PersonDTO {
	return PersonDTO{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Address:   p.Address,
		Gender:    p.Gender,
		Enabled:   p.Enabled,
	}
}

// ToEntity copies a DTO into an entity; links are dropped.
func ToEntity(d PersonDTO) Person {
	return Person{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Address:   d.Address,
		Gender:    d.Gender,
		Enabled:   d.Enabled,
	}
}
