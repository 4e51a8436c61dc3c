package repoargs

type RepositoryName string

const (
	UserRepoName         RepositoryName = "user"
	ReferralRepoName     RepositoryName = "referral"
	BatchRepoName        RepositoryName = "batch"
	PayoutRepoName       RepositoryName = "payout_schedule"
	ContributionRepoName RepositoryName = "weekly_contribution"
	SavingsRepoName      RepositoryName = "savings"
	MpesaTxRepoName      RepositoryName = "mpesa_transaction"
	SplitRepoName        RepositoryName = "payment_split"
	RoutingRepoName      RepositoryName = "split_routing"
)

// BatchExecQueryRow колбек результата батч запроса без возвращаемых строк.
type BatchExecQueryRow func(i int, err error)
