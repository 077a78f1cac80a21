package nodetool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	rc       int
	stdout   string
	stderr   string
	commands []string
}

func (f *fakeRunner) Run(ctx context.Context, command string) (int, string, string) {
	f.commands = append(f.commands, command)
	return f.rc, f.stdout, f.stderr
}

func TestVerifyCommand_Fragment(t *testing.T) {
	tests := []struct {
		name    string
		request VerifyRequest
		want    string
	}{
		{"bare", VerifyRequest{}, "verify"},
		{"extended", VerifyRequest{Extended: true}, "verify -e"},
		{"keyspace", VerifyRequest{Keyspace: "ks"}, "verify ks"},
		{"single table", VerifyRequest{Keyspace: "ks", Tables: []string{"users"}}, "verify ks users"},
		{"tables keep order", VerifyRequest{Keyspace: "ks", Tables: []string{"c", "a", "b", "a"}}, "verify ks c a b a"},
		{"everything", VerifyRequest{Keyspace: "ks", Tables: []string{"a", "b", "c"}, Extended: true}, "verify -e ks a b c"},
	}
	builder := NewCommandBuilder(ConnectionConfig{Host: "db1"})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewVerifyCommand(builder, tt.request).Fragment(); got != tt.want {
				t.Errorf("VerifyCommand.Fragment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifyCommand_Run(t *testing.T) {
	runner := &fakeRunner{rc: 0, stdout: "  OK\n", stderr: "\n"}
	builder := NewCommandBuilder(ConnectionConfig{Host: "db1", Username: "cassandra", Password: "secret"})
	v := NewVerifyCommand(builder, VerifyRequest{Keyspace: "ks", Tables: []string{"a", "b"}})

	result := v.Run(context.Background(), runner)

	require.Len(t, runner.commands, 1)
	assert.Equal(t, "nodetool --host db1 --port 7199 --username cassandra --password 'secret' verify ks a b", runner.commands[0])
	assert.True(t, result.Changed)
	assert.Equal(t, "OK", result.Stdout)
	assert.Empty(t, result.Stderr)
	assert.Nil(t, result.ReturnCode)
}

func TestVerifyCommand_RunFailure(t *testing.T) {
	runner := &fakeRunner{rc: 2, stderr: "nodetool: Failed to connect to 'db1:7199'\n"}
	v := NewVerifyCommand(NewCommandBuilder(ConnectionConfig{Host: "db1"}), VerifyRequest{Extended: true})

	result := v.Run(context.Background(), runner)

	assert.Equal(t, "nodetool --host db1 --port 7199 verify -e", runner.commands[0])
	assert.False(t, result.Changed)
	assert.Equal(t, 2, result.RC())
	assert.Equal(t, "nodetool: Failed to connect to 'db1:7199'", result.Stderr)
}
