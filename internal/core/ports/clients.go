package ports

import "context"

// ProfanityClient asks an external service whether a text contains profanity.
type ProfanityClient interface {
	ContainsProfanity(ctx context.Context, text string) (bool, error)
}

// QRCodeGenerator renders content as a PNG QR code.
type QRCodeGenerator interface {
	Generate(content string) ([]byte, error)
}
