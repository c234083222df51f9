package handler

// updateProfileRequest carries the optional fields of a partial profile
// update. Pointer fields distinguish "absent" from zero values; role and
// email are not accepted at all.
type updateProfileRequest struct {
	Name            *string  `json:"name"              validate:"omitempty,min=2"`
	Bio             *string  `json:"bio"               validate:"omitempty,max=500"`
	PricePerSession *float64 `json:"price_per_session" validate:"omitempty,gte=0,lte=1000"`
	Languages       []string `json:"languages"`
	Timezone        *string  `json:"timezone"`
}

// profileResponse is the fixed profile projection returned by GET/PUT /me.
type profileResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Role            string   `json:"role"`
	Bio             string   `json:"bio,omitempty"`
	PricePerSession float64  `json:"price_per_session,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	Timezone        string   `json:"timezone,omitempty"`
}

type profileEnvelope struct {
	User profileResponse `json:"user"`
}
