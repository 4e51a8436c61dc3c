package repoargs

type CreateUser struct {
	Phone        string
	FullName     string
	Password     string
	ReferralCode string
}

type UpdateProfile struct {
	FullName string
}
