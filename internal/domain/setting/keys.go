package setting

// Key is the closed set of site settings. Unknown keys are rejected at the
// boundary, so every caller reads a typed value.
type Key string

const (
	KeySiteName                  Key = "site_name"
	KeyModerationRequired        Key = "moderation_required"
	KeyVerificationTokenTTLHours Key = "verification_token_ttl_hours"
	KeyResetTokenTTLHours        Key = "reset_token_ttl_hours"
	KeyViewDedupMinutes          Key = "view_dedup_minutes"
	KeyContactEmail              Key = "contact_email"
)

// Definition describes the type and default of a key.
type Definition struct {
	Key         Key
	Type        ValueType
	Default     string
	Description string
}

var definitions = map[Key]Definition{
	KeySiteName:                  {KeySiteName, ValueTypeString, "ExpoHub", "Site name shown in emails"},
	KeyModerationRequired:        {KeyModerationRequired, ValueTypeBool, "true", "New listings go through moderation"},
	KeyVerificationTokenTTLHours: {KeyVerificationTokenTTLHours, ValueTypeInt, "24", "Email verification link lifetime"},
	KeyResetTokenTTLHours:        {KeyResetTokenTTLHours, ValueTypeInt, "2", "Password reset link lifetime"},
	KeyViewDedupMinutes:          {KeyViewDedupMinutes, ValueTypeInt, "30", "Window in which repeated views count once"},
	KeyContactEmail:              {KeyContactEmail, ValueTypeString, "", "Public contact address"},
}

// Keys lists every key in a stable order.
var Keys = []Key{
	KeySiteName,
	KeyModerationRequired,
	KeyVerificationTokenTTLHours,
	KeyResetTokenTTLHours,
	KeyViewDedupMinutes,
	KeyContactEmail,
}

func (k Key) String() string {
	return string(k)
}

func (k Key) IsValid() bool {
	_, ok := definitions[k]
	return ok
}

// DefinitionOf returns the definition of k.
func DefinitionOf(k Key) (Definition, bool) {
	d, ok := definitions[k]
	return d, ok
}

// ParseKey validates a raw key.
func ParseKey(s string) (Key, error) {
	k := Key(s)
	if !k.IsValid() {
		return "", ErrInvalidSettingKey
	}
	return k, nil
}
