package accounts_repositories

var accountRepository = &AccountRepository{}

func GetAccountRepository() *AccountRepository {
	return accountRepository
}
