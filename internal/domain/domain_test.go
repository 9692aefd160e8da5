package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	env, err := NewEnvelope(EventMemberAdded, "organization-service", "tenant-1",
		MemberAddedPayload{UserID: "user-1", Role: "admin"})
	require.NoError(t, err)

	require.NotEmpty(t, env.EventID)
	require.Equal(t, env.EventID, env.CorrelationID)
	require.Equal(t, Version11, env.EventVersion)
	require.Equal(t, "tenant-1", env.PartitionKey())
	require.Equal(t, "organization.member.added", env.Topic())
	require.NoError(t, env.Validate())

	var p MemberAddedPayload
	require.NoError(t, json.Unmarshal(env.Data, &p))
	require.Equal(t, "admin", p.Role)
}

func TestEnvelopeRoundTrip(t *testing.T) {
	env, err := NewEnvelope(EventEntitlementsUpdated, "billing-service", "tenant-2",
		EntitlementsUpdatedPayload{MaxProjects: 10, MaxMembers: 25, MaxStorageMB: 4096, Features: []string{"sso"}})
	require.NoError(t, err)

	raw, err := env.ToJSON()
	require.NoError(t, err)

	got, err := ParseEnvelope(raw)
	require.NoError(t, err)
	require.Equal(t, env.EventID, got.EventID)
	require.Equal(t, env.EventType, got.EventType)
	require.Equal(t, env.TenantID, got.TenantID)
	require.WithinDuration(t, env.Timestamp, got.Timestamp, time.Second)
}

func TestParseEnvelopeRejectsIncomplete(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `{"eventId": tru`},
		{name: "missing event id", raw: `{"eventType":"organization.member.added","eventVersion":"1.1","timestamp":"2026-08-24T10:00:00Z","source":"org"}`},
		{name: "missing version", raw: `{"eventId":"e1","eventType":"organization.member.added","timestamp":"2026-08-24T10:00:00Z","source":"org"}`},
		{name: "missing source", raw: `{"eventId":"e1","eventType":"organization.member.added","eventVersion":"1.1","timestamp":"2026-08-24T10:00:00Z"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseEnvelope([]byte(tc.raw))
			require.Error(t, err)
		})
	}
}

func TestDecodeMemberAddedVersions(t *testing.T) {
	testCases := []struct {
		name    string
		version string
		data    string
		want    MemberAddedPayload
		wantErr bool
	}{
		{
			name:    "current version",
			version: Version11,
			data:    `{"user_id":"u1","role":"admin"}`,
			want:    MemberAddedPayload{UserID: "u1", Role: "admin"},
		},
		{
			name:    "previous version maps role_name",
			version: Version10,
			data:    `{"user_id":"u1","role_name":"viewer"}`,
			want:    MemberAddedPayload{UserID: "u1", Role: "viewer"},
		},
		{
			name:    "retired version rejected",
			version: "0.9",
			data:    `{"user":"u1"}`,
			wantErr: true,
		},
		{
			name:    "malformed data rejected",
			version: Version11,
			data:    `{"user_id":`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeMemberAdded(tc.version, []byte(tc.data))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
