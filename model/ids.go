package model

// Well-known catalog ids the engine reasons about directly.
const (
	ExpansionTenth       = "tenth"
	ExpansionBlueSun     = "blue_sun"
	ExpansionKalidasa    = "kalidasa"
	ExpansionBreakinAtmo = "breakin_atmo"
	ExpansionPirates     = "pirates"
	ExpansionStillFlying = "still_flying"
	ExpansionCrime       = "crime"

	SetupStandard   = "standard"
	SetupFlyingSolo = "flying_solo"
)

// Step ids.
const (
	StepCaptainSetup     = "captain-setup"
	StepSetupCard        = "setup-card-selection"
	StepOptionalRules    = "optional-rules"
	StepNavDecks         = "nav-decks"
	StepAllianceReaver   = "alliance-reaver"
	StepDraft            = "draft"
	StepDraftHaven       = "draft-haven"
	StepGoal             = "goal"
	StepResources        = "resources"
	StepJobs             = "jobs"
	StepPrime            = "prime"
	StepGameLengthTokens = "game-length-tokens"
	StepFinal            = "final"
)

// Flags set through add-flag fragments.
const (
	FlagExtraPriming   = "extraPriming"
	FlagReducedEconomy = "reducedEconomy"
	FlagSoloPlay       = "soloPlay"
)

// Challenge option ids with engine-side effects.
const (
	ChallengeSingleContact     = "single_contact"
	ChallengeDontPrimeContacts = "dont_prime_contacts"
	ChallengeFreeStartingShip  = "free_starting_ship"
)

// Optional-rule toggle keys.
const (
	OptionHighVolumeSupply = "highVolumeSupply"
	OptionShipUpgrades     = "optionalShipUpgrades"
)
