// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// DeadLettersColumns holds the columns for the "dead_letters" table.
	DeadLettersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "topic", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "failure_reason", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeInt},
		{Name: "replayed_at", Type: field.TypeTime, Nullable: true},
	}
	// DeadLettersTable holds the schema information for the "dead_letters" table.
	DeadLettersTable = &schema.Table{
		Name:       "dead_letters",
		Columns:    DeadLettersColumns,
		PrimaryKey: []*schema.Column{DeadLettersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deadletter_topic",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[2]},
			},
			{
				Name:    "deadletter_event_id",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[3]},
			},
			{
				Name:    "deadletter_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[1]},
			},
		},
	}
	// EntitlementDiscrepanciesColumns holds the columns for the "entitlement_discrepancies" table.
	EntitlementDiscrepanciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "operation", Type: field.TypeString},
		{Name: "reconciled", Type: field.TypeBool, Default: false},
	}
	// EntitlementDiscrepanciesTable holds the schema information for the "entitlement_discrepancies" table.
	EntitlementDiscrepanciesTable = &schema.Table{
		Name:       "entitlement_discrepancies",
		Columns:    EntitlementDiscrepanciesColumns,
		PrimaryKey: []*schema.Column{EntitlementDiscrepanciesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "entitlementdiscrepancy_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{EntitlementDiscrepanciesColumns[2]},
			},
			{
				Name:    "entitlementdiscrepancy_reconciled",
				Unique:  false,
				Columns: []*schema.Column{EntitlementDiscrepanciesColumns[4]},
			},
		},
	}
	// EntitlementEntriesColumns holds the columns for the "entitlement_entries" table.
	EntitlementEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeString, Unique: true},
		{Name: "max_projects", Type: field.TypeInt},
		{Name: "max_members", Type: field.TypeInt},
		{Name: "max_storage_mb", Type: field.TypeInt},
		{Name: "features", Type: field.TypeJSON, Nullable: true},
		{Name: "cached_at", Type: field.TypeTime},
	}
	// EntitlementEntriesTable holds the schema information for the "entitlement_entries" table.
	EntitlementEntriesTable = &schema.Table{
		Name:       "entitlement_entries",
		Columns:    EntitlementEntriesColumns,
		PrimaryKey: []*schema.Column{EntitlementEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "entitlemententry_cached_at",
				Unique:  false,
				Columns: []*schema.Column{EntitlementEntriesColumns[6]},
			},
		},
	}
	// MembershipEntriesColumns holds the columns for the "membership_entries" table.
	MembershipEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "cached_at", Type: field.TypeTime},
	}
	// MembershipEntriesTable holds the schema information for the "membership_entries" table.
	MembershipEntriesTable = &schema.Table{
		Name:       "membership_entries",
		Columns:    MembershipEntriesColumns,
		PrimaryKey: []*schema.Column{MembershipEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "membershipentry_tenant_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{MembershipEntriesColumns[1], MembershipEntriesColumns[2]},
			},
			{
				Name:    "membershipentry_cached_at",
				Unique:  false,
				Columns: []*schema.Column{MembershipEntriesColumns[4]},
			},
		},
	}
	// OutboxEventsColumns holds the columns for the "outbox_events" table.
	OutboxEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "topic", Type: field.TypeString},
		{Name: "partition_key", Type: field.TypeString},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
	}
	// OutboxEventsTable holds the schema information for the "outbox_events" table.
	OutboxEventsTable = &schema.Table{
		Name:       "outbox_events",
		Columns:    OutboxEventsColumns,
		PrimaryKey: []*schema.Column{OutboxEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "outboxevent_published_at",
				Unique:  false,
				Columns: []*schema.Column{OutboxEventsColumns[5]},
			},
			{
				Name:    "outboxevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{OutboxEventsColumns[1]},
			},
		},
	}
	// ProcessedEventsColumns holds the columns for the "processed_events" table.
	ProcessedEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "consumer_id", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString},
		{Name: "processed_at", Type: field.TypeTime},
	}
	// ProcessedEventsTable holds the schema information for the "processed_events" table.
	ProcessedEventsTable = &schema.Table{
		Name:       "processed_events",
		Columns:    ProcessedEventsColumns,
		PrimaryKey: []*schema.Column{ProcessedEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processedevent_consumer_id_event_id",
				Unique:  true,
				Columns: []*schema.Column{ProcessedEventsColumns[1], ProcessedEventsColumns[2]},
			},
			{
				Name:    "processedevent_processed_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessedEventsColumns[3]},
			},
		},
	}
	// SagaInstancesColumns holds the columns for the "saga_instances" table.
	SagaInstancesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "saga_type", Type: field.TypeString},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "IN_PROGRESS", "COMPLETED", "COMPENSATING", "FAILED"}, Default: "PENDING"},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// SagaInstancesTable holds the schema information for the "saga_instances" table.
	SagaInstancesTable = &schema.Table{
		Name:       "saga_instances",
		Columns:    SagaInstancesColumns,
		PrimaryKey: []*schema.Column{SagaInstancesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sagainstance_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{SagaInstancesColumns[4]},
			},
			{
				Name:    "sagainstance_saga_type_status",
				Unique:  false,
				Columns: []*schema.Column{SagaInstancesColumns[3], SagaInstancesColumns[5]},
			},
		},
	}
	// SagaStepsColumns holds the columns for the "saga_steps" table.
	SagaStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "saga_id", Type: field.TypeString},
		{Name: "seq", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "participant", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "COMPLETED", "COMPENSATED", "FAILED"}, Default: "PENDING"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "compensation_payload", Type: field.TypeBytes, Nullable: true},
	}
	// SagaStepsTable holds the schema information for the "saga_steps" table.
	SagaStepsTable = &schema.Table{
		Name:       "saga_steps",
		Columns:    SagaStepsColumns,
		PrimaryKey: []*schema.Column{SagaStepsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sagastep_saga_id_seq",
				Unique:  true,
				Columns: []*schema.Column{SagaStepsColumns[3], SagaStepsColumns[4]},
			},
			{
				Name:    "sagastep_saga_id_status",
				Unique:  false,
				Columns: []*schema.Column{SagaStepsColumns[3], SagaStepsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		DeadLettersTable,
		EntitlementDiscrepanciesTable,
		EntitlementEntriesTable,
		MembershipEntriesTable,
		OutboxEventsTable,
		ProcessedEventsTable,
		SagaInstancesTable,
		SagaStepsTable,
	}
)

func init() {
}
