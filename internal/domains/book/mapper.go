package book

func ToDTO(b Book) BookDTO {
	return BookDTO{
		ID:         b.ID,
		Author:     b.Author,
		LaunchDate: b.LaunchDate,
		Price:      b.Price,
		Title:      b.Title,
	}
}

func ToEntity(d BookDTO) Book {
	return Book{
		ID:         d.ID,
		Title:      d.Title,
		Author:     d.Author,
		Price:      d.Price,
		LaunchDate: d.LaunchDate,
	}
}
