package user

// Demo accounts seeded on first startup.
// The cleartext passwords only live in the seed data of this demo application.
var demoAccounts = []struct {
	Username    string
	DisplayName string
	Password    string
}{
	{Username: "testuser", DisplayName: "Test User", Password: "demo123"},
}

// DemoAccounts returns the demo user creates to seed an empty user repository with
func DemoAccounts() ([]*Create, error) {
	creates := make([]*Create, 0, len(demoAccounts))
	for _, account := range demoAccounts {
		hash, err := HashPassword(account.Password)
		if err != nil {
			return nil, err
		}
		creates = append(creates, &Create{
			Username:     account.Username,
			DisplayName:  account.DisplayName,
			PasswordHash: hash,
		})
	}
	return creates, nil
}
