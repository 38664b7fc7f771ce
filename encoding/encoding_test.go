package encoding_test

//revive:disable:import-shadowing reason: Disabled for assert := assert.New(), which is
// the preferred method of using multiple asserts in a test.

import (
	"net/http"
	"testing"

	"github.com/illuscio-dev/spancontent-go/encoding"
	"github.com/stretchr/testify/assert"
)

func ParameterizeFromString(
	test *testing.T, testStrings []string, encodingExpected encoding.Encoding,
) {
	for _, encodingString := range testStrings {
		encodingExtracted := encoding.FromString(encodingString)
		assert.Equal(test, encodingExpected, encodingExtracted)
	}
}

func ParameterizeFromHeader(
	test *testing.T, testStrings []string, encodingExpected encoding.Encoding,
) {
	for _, encodingString := range testStrings {
		req := http.Request{
			Header: make(http.Header),
		}
		req.Header.Set("Content-Encoding", encodingString)
		encodingExtracted := encoding.FromHeader(req.Header)
		assert.Equal(test, encodingExpected, encodingExtracted)
	}
}

func TestFromGzip(test *testing.T) {
	stringValues := []string{
		"gzip",
		"GZIP",
		"Gzip",
		" gzip ",
		"x-gzip",
		"X-GZIP",
	}

	testFromString := func(subTest *testing.T) {
		ParameterizeFromString(test, stringValues, encoding.GZIP)
	}
	testFromHeader := func(subTest *testing.T) {
		ParameterizeFromHeader(test, stringValues, encoding.GZIP)
	}

	test.Run("GZIP From String", testFromString)
	test.Run("GZIP From Header", testFromHeader)
}

func TestFromDeflate(test *testing.T) {
	stringValues := []string{
		"deflate",
		"DEFLATE",
		"Deflate",
	}

	testFromString := func(subTest *testing.T) {
		ParameterizeFromString(test, stringValues, encoding.DEFLATE)
	}
	testFromHeader := func(subTest *testing.T) {
		ParameterizeFromHeader(test, stringValues, encoding.DEFLATE)
	}

	test.Run("DEFLATE From String", testFromString)
	test.Run("DEFLATE From Header", testFromHeader)
}

func TestFromBrotli(test *testing.T) {
	stringValues := []string{
		"br",
		"BR",
		" br",
	}

	testFromString := func(subTest *testing.T) {
		ParameterizeFromString(test, stringValues, encoding.BROTLI)
	}
	testFromHeader := func(subTest *testing.T) {
		ParameterizeFromHeader(test, stringValues, encoding.BROTLI)
	}

	test.Run("BROTLI From String", testFromString)
	test.Run("BROTLI From Header", testFromHeader)
}

func TestFromZstd(test *testing.T) {
	stringValues := []string{
		"zstd",
		"ZSTD",
	}

	testFromString := func(subTest *testing.T) {
		ParameterizeFromString(test, stringValues, encoding.ZSTD)
	}
	testFromHeader := func(subTest *testing.T) {
		ParameterizeFromHeader(test, stringValues, encoding.ZSTD)
	}

	test.Run("ZSTD From String", testFromString)
	test.Run("ZSTD From Header", testFromHeader)
}

func TestFromIdentity(test *testing.T) {
	stringValues := []string{
		"identity",
		"IDENTITY",
	}

	testFromString := func(subTest *testing.T) {
		ParameterizeFromString(test, stringValues, encoding.IDENTITY)
	}
	testFromHeader := func(subTest *testing.T) {
		ParameterizeFromHeader(test, stringValues, encoding.IDENTITY)
	}

	test.Run("IDENTITY From String", testFromString)
	test.Run("IDENTITY From Header", testFromHeader)
}

func TestFromUnknown(test *testing.T) {
	stringValues := []string{""}

	testFromString := func(subTest *testing.T) {
		ParameterizeFromString(test, stringValues, encoding.UNKNOWN)
	}
	testFromHeader := func(subTest *testing.T) {
		ParameterizeFromHeader(test, stringValues, encoding.UNKNOWN)
	}

	test.Run("UNKNOWN From String", testFromString)
	test.Run("UNKNOWN From Header", testFromHeader)
}

func TestFromStringOther(test *testing.T) {
	stringValues := []string{"snappy", "SNAPPY", "Snappy"}
	expected := encoding.Encoding("snappy")

	testFromString := func(subTest *testing.T) {
		ParameterizeFromString(test, stringValues, expected)
	}
	testFromHeader := func(subTest *testing.T) {
		ParameterizeFromHeader(test, stringValues, expected)
	}

	test.Run("Other From String", testFromString)
	test.Run("Other From Header", testFromHeader)
}

func TestKnown(test *testing.T) {
	assert := assert.New(test)

	knownValues := []encoding.Encoding{
		encoding.GZIP,
		encoding.DEFLATE,
		encoding.BROTLI,
		encoding.ZSTD,
		encoding.IDENTITY,
	}

	for _, enc := range knownValues {
		assert.True(enc.Known(), string(enc))
	}

	assert.False(encoding.Encoding("snappy").Known())
	assert.False(encoding.UNKNOWN.Known())
}

func TestApplyHeader(test *testing.T) {
	assert := assert.New(test)

	resp := http.Response{
		Header: make(http.Header),
	}
	encoding.BROTLI.ApplyHeader(resp.Header)

	assert.Equal("br", resp.Header.Get("Content-Encoding"))
	assert.Equal(encoding.BROTLI, encoding.FromHeader(resp.Header))
}
