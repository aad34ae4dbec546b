package marshaller_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-mvcc/marshaller"
)

type listenConfig struct {
	Address string        `msgpack:"address" yaml:"address"`
	Timeout time.Duration `msgpack:"timeout" yaml:"timeout"`
}

type serverConfig struct {
	Name    string       `msgpack:"name"    yaml:"name"`
	Listen  listenConfig `msgpack:"listen"  yaml:"listen"`
	Peers   []string     `msgpack:"peers"   yaml:"peers,omitempty"`
	Enabled bool         `msgpack:"enabled" yaml:"enabled"`
}

func TestTypedYamlMarshaller_Marshal(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedYamlMarshaller[serverConfig]()

	result, err := marsh.Marshal(serverConfig{
		Name:    "node-1",
		Listen:  listenConfig{Address: "127.0.0.1:2379", Timeout: time.Second},
		Peers:   []string{"a", "b"},
		Enabled: true,
	})
	require.NoError(t, err)

	require.YAMLEq(t, `name: node-1
listen:
    address: 127.0.0.1:2379
    timeout: 1s
peers:
    - a
    - b
enabled: true
`, string(result))
}

func TestTypedYamlMarshaller_Unmarshal(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedYamlMarshaller[serverConfig]()

	result, err := marsh.Unmarshal([]byte(`name: node-2
listen:
    address: ":2379"
    timeout: 250ms
`))
	require.NoError(t, err)
	require.Equal(t, serverConfig{
		Name:    "node-2",
		Listen:  listenConfig{Address: ":2379", Timeout: 250 * time.Millisecond},
		Peers:   nil,
		Enabled: false,
	}, result)
}

func TestTypedYamlMarshaller_Unmarshal_Empty(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedYamlMarshaller[serverConfig]()

	result, err := marsh.Unmarshal(nil)
	require.NoError(t, err)
	require.Equal(t, serverConfig{}, result) //nolint:exhaustruct
}

func TestTypedYamlMarshaller_Unmarshal_Invalid(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedYamlMarshaller[serverConfig]()

	_, err := marsh.Unmarshal([]byte("enabled: maybe-not\n"))
	require.Error(t, err)

	var unmarshalErr marshaller.UnmarshalError
	require.ErrorAs(t, err, &unmarshalErr)
	require.Equal(t, marshaller.FormatYAML, unmarshalErr.Format)
	require.Contains(t, err.Error(), "failed to unmarshal yaml")
}

func TestTypedMsgpackMarshaller_RoundTrip(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedMsgpackMarshaller[serverConfig]()

	original := serverConfig{
		Name:    "node-3",
		Listen:  listenConfig{Address: "localhost:0", Timeout: 3 * time.Second},
		Peers:   []string{"x"},
		Enabled: true,
	}

	data, err := marsh.Marshal(original)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := marsh.Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, original, decoded)
}

func TestTypedMsgpackMarshaller_Unmarshal_Invalid(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedMsgpackMarshaller[serverConfig]()

	_, err := marsh.Unmarshal([]byte{0xc1})
	require.Error(t, err)

	var unmarshalErr marshaller.UnmarshalError
	require.ErrorAs(t, err, &unmarshalErr)
	require.Equal(t, marshaller.FormatMsgpack, unmarshalErr.Format)
}
