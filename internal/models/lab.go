package models

// Lab represents the LABS table. Static reference data; read-only from the
// complaint lifecycle's perspective.
type Lab struct {
	LabID          int64   `db:"LAB_ID" json:"id"`
	Name           string  `db:"NAME" json:"name"`
	DiscordWebhook *string `db:"DISCORD_WEBHOOK" json:"-"`
}

// Ref returns the embeddable reference form of the lab
func (l *Lab) Ref() LabRef {
	return LabRef{LabID: l.LabID, Name: l.Name}
}
