package envstruct_test

import (
	"github.com/myrjola/findmoney/internal/envstruct"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestPopulate(t *testing.T) {
	type args struct {
		v         any
		lookupEnv func(string) (string, bool)
	}
	tests := []struct {
		name    string
		args    args
		want    any
		wantErr error
	}{
		{
			name: "nil",
			args: args{
				v:         nil,
				lookupEnv: func(_ string) (string, bool) { return "", false },
			},
			want:    nil,
			wantErr: envstruct.ErrInvalidValue,
		},
		{
			name: "not pointer",
			args: args{
				v:         struct{}{},
				lookupEnv: func(_ string) (string, bool) { return "", false },
			},
			want:    nil,
			wantErr: envstruct.ErrInvalidValue,
		},
		{
			name: "empty env",
			args: args{
				v: &struct { //nolint:exhaustruct // populated later
					Addr string `env:"FINDMONEY_ADDR"`
				}{},
				lookupEnv: func(_ string) (string, bool) { return "", false },
			},
			want:    nil,
			wantErr: envstruct.ErrEnvNotSet,
		},
		{
			name: "picks correct env variable",
			args: args{
				v: &struct { //nolint:exhaustruct // populated later
					Addr       string `env:"FINDMONEY_ADDR"`
					Assets     string `env:"FINDMONEY_ASSETS"`
					OtherValue string
				}{},
				lookupEnv: func(s string) (string, bool) { return strings.ToLower(s), true },
			},
			want: &struct {
				Addr       string
				Assets     string
				OtherValue string
			}{Addr: "findmoney_addr", Assets: "findmoney_assets", OtherValue: ""},
			wantErr: nil,
		},
		{
			name: "handles default values of every kind",
			args: args{
				v: &struct { //nolint:exhaustruct // populated later
					Addr      string `env:"FINDMONEY_ADDR" envDefault:"localhost:4000"`
					LockRooms bool   `env:"FINDMONEY_LOCK_ROOMS" envDefault:"true"`
					MaxGames  int    `env:"FINDMONEY_MAX_GAMES" envDefault:"1000"`
				}{},
				lookupEnv: func(_ string) (string, bool) { return "", false },
			},
			want: &struct {
				Addr      string
				LockRooms bool
				MaxGames  int
			}{Addr: "localhost:4000", LockRooms: true, MaxGames: 1000},
			wantErr: nil,
		},
		{
			name: "rejects malformed int",
			args: args{
				v: &struct { //nolint:exhaustruct // populated later
					MaxGames int `env:"FINDMONEY_MAX_GAMES"`
				}{},
				lookupEnv: func(_ string) (string, bool) { return "many", true },
			},
			want:    nil,
			wantErr: envstruct.ErrInvalidValue,
		},
		{
			name: "rejects unsupported kinds",
			args: args{
				v: &struct { //nolint:exhaustruct // populated later
					Ratio float64 `env:"FINDMONEY_RATIO"`
				}{},
				lookupEnv: func(_ string) (string, bool) { return "0.5", true },
			},
			want:    nil,
			wantErr: envstruct.ErrInvalidValue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.args.v
			err := envstruct.Populate(v, tt.args.lookupEnv)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.EqualValues(t, tt.want, v)
			}
		})
	}
}
