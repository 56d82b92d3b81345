package ens

import "github.com/x-xyz/ensapi/domain"

const maxDNSLabelLength = 255

// DNSEncode renders name in DNS wire format for ENSIP-10 resolve(bytes,bytes).
// Labels longer than 255 bytes are replaced by their encoded labelhash.
func DNSEncode(name string) ([]byte, error) {
	out := make([]byte, 0, len(name)+2)
	for _, label := range Labels(name) {
		if len(label) == 0 {
			return nil, domain.ErrInvalidName
		}
		if len(label) > maxDNSLabelLength {
			label = EncodeLabelHash(LabelHashOf(label))
		}
		out = append(out, byte(len(label)))
		out = append(out, label...)
	}
	return append(out, 0), nil
}
