// Package fixtures provides test data for the person and book resources.
//
// Every call returns freshly allocated values, so a test may mutate what it
// gets without affecting any other test:
//
//	repo := memstore.NewBookRepository(fixtures.Books()...)
//	dto := fixtures.BookDTO(fixtures.WithTitle("Clean Code"))
package fixtures

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"library-backend/internal/domains/auth"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/person"
)

// ============================================================================
// Person Fixtures
// ============================================================================

// People returns the ten persons seeded by the migrations, ids 1..10.
func People() []person.Person {
	return []person.Person{
		{ID: 1, FirstName: "Vinicius", LastName: "Fillos", Address: "Street Alfredo Kamisnki", Gender: "Male", Enabled: true},
		{ID: 2, FirstName: "Ayrton", LastName: "Senna", Address: "São Paulo - Brazil", Gender: "Male", Enabled: true},
		{ID: 3, FirstName: "Marie", LastName: "Curie", Address: "Warsaw - Poland", Gender: "Female", Enabled: true},
		{ID: 4, FirstName: "Mahatma", LastName: "Gandhi", Address: "Porbandar - India", Gender: "Male", Enabled: true},
		{ID: 5, FirstName: "Ada", LastName: "Lovelace", Address: "London - England", Gender: "Female", Enabled: true},
		{ID: 6, FirstName: "Nelson", LastName: "Mandela", Address: "Mvezo - South Africa", Gender: "Male", Enabled: true},
		{ID: 7, FirstName: "Indira", LastName: "Gandhi", Address: "Allahabad - India", Gender: "Female", Enabled: true},
		{ID: 8, FirstName: "Alan", LastName: "Turing", Address: "Maida Vale - England", Gender: "Male", Enabled: true},
		{ID: 9, FirstName: "Grace", LastName: "Hopper", Address: "New York City - USA", Gender: "Female", Enabled: true},
		{ID: 10, FirstName: "Muhammad", LastName: "Ali", Address: "Louisville - Kentucky - USA", Gender: "Male", Enabled: true},
	}
}

// PersonDTO returns Richard Stallman unless opts say otherwise.
func PersonDTO(opts ...func(*person.PersonDTO)) *person.PersonDTO {
	dto := &person.PersonDTO{
		FirstName: "Richard",
		LastName:  "Stallman",
		Address:   "New York City, New York, US",
		Gender:    "Male",
		Enabled:   true,
	}
	for _, fn := range opts {
		fn(dto)
	}
	return dto
}

func WithPersonID(id int64) func(*person.PersonDTO) {
	return func(d *person.PersonDTO) { d.ID = id }
}

func WithEnabled(enabled bool) func(*person.PersonDTO) {
	return func(d *person.PersonDTO) { d.Enabled = enabled }
}

// ============================================================================
// Book Fixtures
// ============================================================================

var seedLaunch = time.Date(2017, 11, 7, 15, 9, 1, 0, time.UTC)

func seedBook(id int64, title, author, price string, launch time.Time) book.Book {
	return book.Book{
		ID:         id,
		Title:      title,
		Author:     author,
		Price:      decimal.RequireFromString(price),
		LaunchDate: launch,
	}
}

// Books returns the fifteen books seeded by the migrations, ids 1..15.
func Books() []book.Book {
	return []book.Book{
		seedBook(1, "Working effectively with legacy code", "Michael C. Feathers", "49.00", time.Date(2017, 11, 29, 13, 50, 5, 0, time.UTC)),
		seedBook(2, "Design Patterns", "Ralph Johnson, Erich Gamma, John Vlissides e Richard Helm", "45.00", time.Date(2017, 11, 29, 15, 15, 13, 0, time.UTC)),
		seedBook(3, "Clean Code", "Robert C. Martin", "77.00", time.Date(2009, 1, 10, 0, 0, 0, 0, time.UTC)),
		seedBook(4, "JavaScript", "Crockford", "67.00", seedLaunch),
		seedBook(5, "Code complete", "Steve McConnell", "58.00", seedLaunch),
		seedBook(6, "Refactoring", "Martin Fowler e Kent Beck", "88.00", seedLaunch),
		seedBook(7, "Head First Design Patterns", "Eric Freeman, Elisabeth Freeman, Kathy Sierra, Bert Bates", "110.00", seedLaunch),
		seedBook(8, "Domain Driven Design", "Eric Evans", "92.00", seedLaunch),
		seedBook(9, "Implantando a governança de TI", "Aguinaldo Aragon Fernandes e Vladimir Ferraz de Abreu", "54.00", seedLaunch),
		seedBook(10, "O verdadeiro valor de TI", "Richard Hunter e George Westerman", "95.00", seedLaunch),
		seedBook(11, "Os 11 segredos de líderes de TI altamente influentes", "Marc J. Schiller", "45.00", seedLaunch),
		seedBook(12, "Big Data: como extrair volume, variedade, velocidade e valor da avalanche de informação cotidiana", "Viktor Mayer-Schonberger e Kenneth Kukier", "54.00", seedLaunch),
		seedBook(13, "O poder dos quietos", "Susan Cain", "123.00", seedLaunch),
		seedBook(14, "Pragmatic Programmer", "Andrew Hunt and David Thomas", "65.00", seedLaunch),
		seedBook(15, "Engenharia de Software: uma abordagem profissional", "Roger S. Pressman", "56.00", seedLaunch),
	}
}

// BookDTO returns Clean Code at 199.9 unless opts say otherwise.
func BookDTO(opts ...func(*book.BookDTO)) *book.BookDTO {
	dto := &book.BookDTO{
		Title:      "Clean Code",
		Author:     "Robert C. Martin",
		Price:      decimal.RequireFromString("199.9"),
		LaunchDate: time.Date(2008, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, fn := range opts {
		fn(dto)
	}
	return dto
}

func WithBookID(id int64) func(*book.BookDTO) {
	return func(d *book.BookDTO) { d.ID = id }
}

func WithTitle(title string) func(*book.BookDTO) {
	return func(d *book.BookDTO) { d.Title = title }
}

// ============================================================================
// User Fixtures
// ============================================================================

// User returns an enabled account whose password hashes to password.
// The hash uses the minimum bcrypt cost to keep tests fast.
func User(username, password string) auth.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return auth.User{
		Username:              username,
		FullName:              "Leandro Costa",
		PasswordHash:          string(hash),
		AccountNonExpired:     true,
		AccountNonLocked:      true,
		CredentialsNonExpired: true,
		Enabled:               true,
		CreatedAt:             seedLaunch,
	}
}
