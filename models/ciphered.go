package models

type (
	// CipheredText is a string alias representing an encrypted field on the
	// wire and in the database: standard base64 of nonce || AES-GCM ciphertext.
	// The server treats values of this type as opaque.
	CipheredText string

	// CipheredKey is a string alias for a per-note symmetric key sealed under
	// the owner's public key (RSA-OAEP), standard base64 encoded.
	CipheredKey string
)
