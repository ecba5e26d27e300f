package domain

// User-resolution strategies supported by a validator.
const (
	StrategyDefault     = "default"      // trust the user_id claim
	StrategyCurrentUser = "current_user" // resolve the user by the email claim
)

// Validator is a named configuration bundle controlling how bearer tokens are
// signed and verified for one API surface. Administered out of band; this
// layer only reads it.
type Validator struct {
	Name string `bson:"_id"`
	// SecretKey is the static signing secret. Ignored when SecretFromParams
	// is set, in which case the effective secret is read from the
	// configuration-parameter store at call time so it can be rotated
	// without redeploying the validator record.
	SecretKey        string `bson:"secret_key"`
	SecretFromParams bool   `bson:"secret_from_params"`
	UserIDStrategy   string `bson:"user_id_strategy"`
}
