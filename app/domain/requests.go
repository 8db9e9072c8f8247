package domain

// SignUpRequest carries the fields required to register a member
type SignUpRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries the mutable profile fields. An empty password
// leaves the current one untouched.
type UpdateProfileRequest struct {
	Nickname string `json:"nickname"`
	Intro    string `json:"intro"`
	Password string `json:"password"`
}

// ImageUpload carries a profile image to be stored by the file uploader
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Mypage is the profile view returned for a member. Email and Name are set
// only when the requester is viewing their own page.
type Mypage struct {
	Email      string `json:"email,omitempty"`
	Name       string `json:"name,omitempty"`
	Nickname   string `json:"nickname"`
	Intro      string `json:"intro"`
	Point      int    `json:"point"`
	PointLevel int    `json:"point_level"`
	PointExp   int    `json:"point_exp"`
	ImageURL   string `json:"image_url,omitempty"`
}

// OAuthProfile is the account information fetched from the OAuth provider
type OAuthProfile struct {
	Email    string
	Nickname string
	ImageURL string
}
