package hawk

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"strconv"
	"strings"
)

const (
	AlgorithmSHA256 = "sha256"

	headerVersion = "1"
)

var ErrUnsupportedAlgorithm = errors.New("unsupported hawk algorithm")

var algorithms = map[string]func() hash.Hash{
	AlgorithmSHA256: sha256.New,
}

type Credentials struct {
	ID        string
	Key       string
	Algorithm string
	User      string

	// Data carries application values resolved together with the key.
	Data any
}

// normalizedString builds the hawk.1.header string the MAC is computed over.
func normalizedString(req Request, art Artifacts) string {
	var sb strings.Builder
	sb.WriteString("hawk." + headerVersion + ".header\n")
	sb.WriteString(strconv.FormatInt(art.Timestamp, 10) + "\n")
	sb.WriteString(art.Nonce + "\n")
	sb.WriteString(strings.ToUpper(req.Method) + "\n")
	sb.WriteString(req.Resource + "\n")
	sb.WriteString(strings.ToLower(req.Host) + "\n")
	sb.WriteString(strconv.Itoa(req.Port) + "\n")
	sb.WriteString(art.Hash + "\n")
	if art.Ext != "" {
		sb.WriteString(strings.NewReplacer(`\`, `\\`, "\n", `\n`).Replace(art.Ext))
	}
	sb.WriteString("\n")
	return sb.String()
}

func calculateMAC(creds Credentials, req Request, art Artifacts) (string, error) {
	newHash, ok := algorithms[strings.ToLower(creds.Algorithm)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, creds.Algorithm)
	}

	mac := hmac.New(newHash, []byte(creds.Key))
	_, _ = mac.Write([]byte(normalizedString(req, art)))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
