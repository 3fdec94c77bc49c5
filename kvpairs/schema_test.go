package kvpairs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eposkus/whaturl/urlstore"
)

func TestBuiltinSchemasVerify(t *testing.T) {
	assert.NoError(t, Verify(FormEncoded, urlstore.CompQuery))
	assert.NoError(t, Verify(FormEncoded, urlstore.CompFragment))
	assert.NoError(t, Verify(PercentEncoded, urlstore.CompQuery))
	assert.NoError(t, Verify(PercentEncoded, urlstore.CompFragment))
}

func TestVerifyRejectsUnrecognizedPreferredDelimiter(t *testing.T) {
	bad := brokenSchema{pairDelim: '&', kvDelim: '=', recognizesPair: false}
	err := Verify(bad, urlstore.CompQuery)
	var verr *VerificationError
	assert := assert.New(t)
	assert.ErrorAs(err, &verr)
	assert.Equal(PreferredPairDelimiterNotRecognized, verr.Reason)
}

func TestVerifyRejectsHexDigitDelimiter(t *testing.T) {
	bad := brokenSchema{pairDelim: 'A', kvDelim: '=', recognizesPair: true, recognizesKV: true}
	err := Verify(bad, urlstore.CompQuery)
	var verr *VerificationError
	assert := assert.New(t)
	assert.ErrorAs(err, &verr)
	assert.Equal(PreferredPairDelimiterInvalid, verr.Reason)
}

func TestVerifyRejectsInconsistentSpaceEncoding(t *testing.T) {
	bad := brokenSchema{
		pairDelim: '&', kvDelim: '=', recognizesPair: true, recognizesKV: true,
		encodeSpaceAsPlus: true, decodePlusAsSpace: false,
	}
	err := Verify(bad, urlstore.CompQuery)
	var verr *VerificationError
	assert := assert.New(t)
	assert.ErrorAs(err, &verr)
	assert.Equal(InconsistentSpaceEncoding, verr.Reason)
}

// brokenSchema lets tests construct Schema values that fail one
// specific Verify condition at a time.
type brokenSchema struct {
	pairDelim, kvDelim                   byte
	recognizesPair, recognizesKV         bool
	encodeSpaceAsPlus, decodePlusAsSpace bool
}

func (b brokenSchema) PreferredPairDelimiter() byte { return b.pairDelim }
func (b brokenSchema) PreferredKVDelimiter() byte   { return b.kvDelim }
func (b brokenSchema) IsPairDelimiter(c byte) bool  { return b.recognizesPair && c == b.pairDelim }
func (b brokenSchema) IsKVDelimiter(c byte) bool    { return b.recognizesKV && c == b.kvDelim }
func (b brokenSchema) DecodePlusAsSpace() bool      { return b.decodePlusAsSpace }
func (b brokenSchema) EncodeSpaceAsPlus() bool      { return b.encodeSpaceAsPlus }
func (b brokenSchema) ShouldPercentEncode(byte) bool { return false }
