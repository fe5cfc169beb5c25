package security

// Credential is the identity payload handed back to a caller after login.
// Token stays empty under the email-bearer provider: the client keeps the
// email and presents it in request paths as its proof of identity. That is
// a known security gap carried over for client compatibility; substituting
// a session or token provider here closes it without touching the services.
type Credential struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token,omitempty"`
}

type Provider interface {
	Issue(kind, email, name string) (Credential, error)
}

type EmailBearer struct{}

func NewEmailBearer() *EmailBearer {
	return &EmailBearer{}
}

func (*EmailBearer) Issue(kind, email, name string) (Credential, error) {
	return Credential{Email: email, Name: name}, nil
}
