package services

// Fixed crediting amounts. Both the registration path and the freeplay path
// read these constants; they are defined nowhere else.
const (
	// RegistrationBonus is credited to the referrer's earnings when a new
	// account registers with their code.
	RegistrationBonus = 82.0

	// FreeplayBonus is credited to the acting account's balance per accepted
	// freeplay submission.
	FreeplayBonus = 10.0
)
