package digester_test

import (
	"encoding/hex"
	"testing"

	"github.com/byte4ever/file_hasher/digester"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm_case_insensitive(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"sha256", "SHA256", "Sha256", " sha256 "} {
		got, err := digester.ParseAlgorithm(name)

		require.NoError(t, err, name)
		assert.Equal(t, digester.SHA256, got, name)
	}
}

func TestParseAlgorithm_unsupported(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"md5", "sha1", "", "sha-256"} {
		_, err := digester.ParseAlgorithm(name)

		require.ErrorIs(t, err, digester.ErrUnsupportedAlgorithm, name)
		assert.Equal(t, "unsupported algorithm: "+name, err.Error())
	}
}

func TestAlgorithms_sorted_and_complete(t *testing.T) {
	t.Parallel()

	all := digester.Algorithms()

	assert.Len(t, all, 13)
	assert.IsNonDecreasing(t, all)
	assert.Contains(t, all, digester.SHA224)
	assert.Contains(t, all, digester.SHA256)
	assert.Contains(t, all, digester.SHA384)
	assert.Contains(t, all, digester.SHA512)
}

func TestAlgorithm_Size_matches_hash(t *testing.T) {
	t.Parallel()

	for _, al := range digester.Algorithms() {
		ha := al.New()

		assert.Equal(t, ha.Size(), al.Size(), al.String())
		assert.Len(t, ha.Sum(nil), al.Size(), al.String())
	}
}

func TestAlgorithm_Size_sha2_family(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 28, digester.SHA224.Size())
	assert.Equal(t, 32, digester.SHA256.Size())
	assert.Equal(t, 48, digester.SHA384.Size())
	assert.Equal(t, 64, digester.SHA512.Size())
	assert.Zero(t, digester.Algorithm("md5").Size())
}

func TestAlgorithm_New_panics_on_unknown(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		digester.Algorithm("md5").New()
	})
}

func TestAlgorithm_New_known_answers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		al    digester.Algorithm
		input string
		want  string
	}{
		{
			digester.SHA224, "abc",
			"23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7",
		},
		{
			digester.SHA256, "abc",
			"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			digester.SHA384, "abc",
			"cb00753f45a35e8bb5a03d699ac65007272c32ab0eded163" +
				"1a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7",
		},
		{
			digester.SHA512, "abc",
			"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
				"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		},
		{
			digester.SHA3_256, "abc",
			"3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
		},
		{
			digester.BLAKE3, "",
			"af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262",
		},
		{
			digester.BLAKE2b512, "",
			"786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419" +
				"d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.al.String(), func(t *testing.T) {
			t.Parallel()

			ha := tt.al.New()
			_, err := ha.Write([]byte(tt.input))
			require.NoError(t, err)

			assert.Equal(t, tt.want, hex.EncodeToString(ha.Sum(nil)))
		})
	}
}
