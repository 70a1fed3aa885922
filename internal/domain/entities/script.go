package entities

// SeedScript is everything the SQL emitter needs to render a bootstrap script.
type SeedScript struct {
	PasswordHash string
	Users        []SeedUser
	Media        []Media
	Lists        []DemoList
}
