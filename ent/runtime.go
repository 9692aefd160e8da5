// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"workgrid.io/workgrid/ent/auditlog"
	"workgrid.io/workgrid/ent/deadletter"
	"workgrid.io/workgrid/ent/entitlementdiscrepancy"
	"workgrid.io/workgrid/ent/entitlemententry"
	"workgrid.io/workgrid/ent/membershipentry"
	"workgrid.io/workgrid/ent/outboxevent"
	"workgrid.io/workgrid/ent/processedevent"
	"workgrid.io/workgrid/ent/sagainstance"
	"workgrid.io/workgrid/ent/sagastep"
	"workgrid.io/workgrid/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[2].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[3].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[4].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	deadletterMixin := schema.DeadLetter{}.Mixin()
	deadletterMixinFields0 := deadletterMixin[0].Fields()
	_ = deadletterMixinFields0
	deadletterFields := schema.DeadLetter{}.Fields()
	_ = deadletterFields
	// deadletterDescCreatedAt is the schema descriptor for created_at field.
	deadletterDescCreatedAt := deadletterMixinFields0[0].Descriptor()
	// deadletter.DefaultCreatedAt holds the default value on creation for the created_at field.
	deadletter.DefaultCreatedAt = deadletterDescCreatedAt.Default.(func() time.Time)
	// deadletterDescTopic is the schema descriptor for topic field.
	deadletterDescTopic := deadletterFields[1].Descriptor()
	// deadletter.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	deadletter.TopicValidator = deadletterDescTopic.Validators[0].(func(string) error)
	// deadletterDescFailureReason is the schema descriptor for failure_reason field.
	deadletterDescFailureReason := deadletterFields[4].Descriptor()
	// deadletter.FailureReasonValidator is a validator for the "failure_reason" field. It is called by the builders before save.
	deadletter.FailureReasonValidator = deadletterDescFailureReason.Validators[0].(func(string) error)
	// deadletterDescAttempts is the schema descriptor for attempts field.
	deadletterDescAttempts := deadletterFields[5].Descriptor()
	// deadletter.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	deadletter.AttemptsValidator = deadletterDescAttempts.Validators[0].(func(int) error)
	entitlementdiscrepancyMixin := schema.EntitlementDiscrepancy{}.Mixin()
	entitlementdiscrepancyMixinFields0 := entitlementdiscrepancyMixin[0].Fields()
	_ = entitlementdiscrepancyMixinFields0
	entitlementdiscrepancyFields := schema.EntitlementDiscrepancy{}.Fields()
	_ = entitlementdiscrepancyFields
	// entitlementdiscrepancyDescCreatedAt is the schema descriptor for created_at field.
	entitlementdiscrepancyDescCreatedAt := entitlementdiscrepancyMixinFields0[0].Descriptor()
	// entitlementdiscrepancy.DefaultCreatedAt holds the default value on creation for the created_at field.
	entitlementdiscrepancy.DefaultCreatedAt = entitlementdiscrepancyDescCreatedAt.Default.(func() time.Time)
	// entitlementdiscrepancyDescTenantID is the schema descriptor for tenant_id field.
	entitlementdiscrepancyDescTenantID := entitlementdiscrepancyFields[1].Descriptor()
	// entitlementdiscrepancy.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	entitlementdiscrepancy.TenantIDValidator = entitlementdiscrepancyDescTenantID.Validators[0].(func(string) error)
	// entitlementdiscrepancyDescOperation is the schema descriptor for operation field.
	entitlementdiscrepancyDescOperation := entitlementdiscrepancyFields[2].Descriptor()
	// entitlementdiscrepancy.OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	entitlementdiscrepancy.OperationValidator = entitlementdiscrepancyDescOperation.Validators[0].(func(string) error)
	// entitlementdiscrepancyDescReconciled is the schema descriptor for reconciled field.
	entitlementdiscrepancyDescReconciled := entitlementdiscrepancyFields[3].Descriptor()
	// entitlementdiscrepancy.DefaultReconciled holds the default value on creation for the reconciled field.
	entitlementdiscrepancy.DefaultReconciled = entitlementdiscrepancyDescReconciled.Default.(bool)
	entitlemententryFields := schema.EntitlementEntry{}.Fields()
	_ = entitlemententryFields
	// entitlemententryDescTenantID is the schema descriptor for tenant_id field.
	entitlemententryDescTenantID := entitlemententryFields[0].Descriptor()
	// entitlemententry.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	entitlemententry.TenantIDValidator = entitlemententryDescTenantID.Validators[0].(func(string) error)
	// entitlemententryDescMaxProjects is the schema descriptor for max_projects field.
	entitlemententryDescMaxProjects := entitlemententryFields[1].Descriptor()
	// entitlemententry.MaxProjectsValidator is a validator for the "max_projects" field. It is called by the builders before save.
	entitlemententry.MaxProjectsValidator = entitlemententryDescMaxProjects.Validators[0].(func(int) error)
	// entitlemententryDescMaxMembers is the schema descriptor for max_members field.
	entitlemententryDescMaxMembers := entitlemententryFields[2].Descriptor()
	// entitlemententry.MaxMembersValidator is a validator for the "max_members" field. It is called by the builders before save.
	entitlemententry.MaxMembersValidator = entitlemententryDescMaxMembers.Validators[0].(func(int) error)
	// entitlemententryDescMaxStorageMB is the schema descriptor for max_storage_mb field.
	entitlemententryDescMaxStorageMB := entitlemententryFields[3].Descriptor()
	// entitlemententry.MaxStorageMBValidator is a validator for the "max_storage_mb" field. It is called by the builders before save.
	entitlemententry.MaxStorageMBValidator = entitlemententryDescMaxStorageMB.Validators[0].(func(int) error)
	// entitlemententryDescCachedAt is the schema descriptor for cached_at field.
	entitlemententryDescCachedAt := entitlemententryFields[5].Descriptor()
	// entitlemententry.DefaultCachedAt holds the default value on creation for the cached_at field.
	entitlemententry.DefaultCachedAt = entitlemententryDescCachedAt.Default.(func() time.Time)
	// entitlemententry.UpdateDefaultCachedAt holds the default value on update for the cached_at field.
	entitlemententry.UpdateDefaultCachedAt = entitlemententryDescCachedAt.UpdateDefault.(func() time.Time)
	membershipentryFields := schema.MembershipEntry{}.Fields()
	_ = membershipentryFields
	// membershipentryDescTenantID is the schema descriptor for tenant_id field.
	membershipentryDescTenantID := membershipentryFields[0].Descriptor()
	// membershipentry.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	membershipentry.TenantIDValidator = membershipentryDescTenantID.Validators[0].(func(string) error)
	// membershipentryDescUserID is the schema descriptor for user_id field.
	membershipentryDescUserID := membershipentryFields[1].Descriptor()
	// membershipentry.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	membershipentry.UserIDValidator = membershipentryDescUserID.Validators[0].(func(string) error)
	// membershipentryDescRole is the schema descriptor for role field.
	membershipentryDescRole := membershipentryFields[2].Descriptor()
	// membershipentry.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	membershipentry.RoleValidator = membershipentryDescRole.Validators[0].(func(string) error)
	// membershipentryDescCachedAt is the schema descriptor for cached_at field.
	membershipentryDescCachedAt := membershipentryFields[3].Descriptor()
	// membershipentry.DefaultCachedAt holds the default value on creation for the cached_at field.
	membershipentry.DefaultCachedAt = membershipentryDescCachedAt.Default.(func() time.Time)
	// membershipentry.UpdateDefaultCachedAt holds the default value on update for the cached_at field.
	membershipentry.UpdateDefaultCachedAt = membershipentryDescCachedAt.UpdateDefault.(func() time.Time)
	outboxeventMixin := schema.OutboxEvent{}.Mixin()
	outboxeventMixinFields0 := outboxeventMixin[0].Fields()
	_ = outboxeventMixinFields0
	outboxeventFields := schema.OutboxEvent{}.Fields()
	_ = outboxeventFields
	// outboxeventDescCreatedAt is the schema descriptor for created_at field.
	outboxeventDescCreatedAt := outboxeventMixinFields0[0].Descriptor()
	// outboxevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	outboxevent.DefaultCreatedAt = outboxeventDescCreatedAt.Default.(func() time.Time)
	// outboxeventDescTopic is the schema descriptor for topic field.
	outboxeventDescTopic := outboxeventFields[1].Descriptor()
	// outboxevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	outboxevent.TopicValidator = outboxeventDescTopic.Validators[0].(func(string) error)
	// outboxeventDescPartitionKey is the schema descriptor for partition_key field.
	outboxeventDescPartitionKey := outboxeventFields[2].Descriptor()
	// outboxevent.PartitionKeyValidator is a validator for the "partition_key" field. It is called by the builders before save.
	outboxevent.PartitionKeyValidator = outboxeventDescPartitionKey.Validators[0].(func(string) error)
	processedeventFields := schema.ProcessedEvent{}.Fields()
	_ = processedeventFields
	// processedeventDescConsumerID is the schema descriptor for consumer_id field.
	processedeventDescConsumerID := processedeventFields[0].Descriptor()
	// processedevent.ConsumerIDValidator is a validator for the "consumer_id" field. It is called by the builders before save.
	processedevent.ConsumerIDValidator = processedeventDescConsumerID.Validators[0].(func(string) error)
	// processedeventDescEventID is the schema descriptor for event_id field.
	processedeventDescEventID := processedeventFields[1].Descriptor()
	// processedevent.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	processedevent.EventIDValidator = processedeventDescEventID.Validators[0].(func(string) error)
	// processedeventDescProcessedAt is the schema descriptor for processed_at field.
	processedeventDescProcessedAt := processedeventFields[2].Descriptor()
	// processedevent.DefaultProcessedAt holds the default value on creation for the processed_at field.
	processedevent.DefaultProcessedAt = processedeventDescProcessedAt.Default.(func() time.Time)
	sagainstanceMixin := schema.SagaInstance{}.Mixin()
	sagainstanceMixinFields0 := sagainstanceMixin[0].Fields()
	_ = sagainstanceMixinFields0
	sagainstanceFields := schema.SagaInstance{}.Fields()
	_ = sagainstanceFields
	// sagainstanceDescCreatedAt is the schema descriptor for created_at field.
	sagainstanceDescCreatedAt := sagainstanceMixinFields0[0].Descriptor()
	// sagainstance.DefaultCreatedAt holds the default value on creation for the created_at field.
	sagainstance.DefaultCreatedAt = sagainstanceDescCreatedAt.Default.(func() time.Time)
	// sagainstanceDescUpdatedAt is the schema descriptor for updated_at field.
	sagainstanceDescUpdatedAt := sagainstanceMixinFields0[1].Descriptor()
	// sagainstance.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sagainstance.DefaultUpdatedAt = sagainstanceDescUpdatedAt.Default.(func() time.Time)
	// sagainstance.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sagainstance.UpdateDefaultUpdatedAt = sagainstanceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sagainstanceDescSagaType is the schema descriptor for saga_type field.
	sagainstanceDescSagaType := sagainstanceFields[1].Descriptor()
	// sagainstance.SagaTypeValidator is a validator for the "saga_type" field. It is called by the builders before save.
	sagainstance.SagaTypeValidator = sagainstanceDescSagaType.Validators[0].(func(string) error)
	// sagainstanceDescTenantID is the schema descriptor for tenant_id field.
	sagainstanceDescTenantID := sagainstanceFields[2].Descriptor()
	// sagainstance.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	sagainstance.TenantIDValidator = sagainstanceDescTenantID.Validators[0].(func(string) error)
	sagastepMixin := schema.SagaStep{}.Mixin()
	sagastepMixinFields0 := sagastepMixin[0].Fields()
	_ = sagastepMixinFields0
	sagastepFields := schema.SagaStep{}.Fields()
	_ = sagastepFields
	// sagastepDescCreatedAt is the schema descriptor for created_at field.
	sagastepDescCreatedAt := sagastepMixinFields0[0].Descriptor()
	// sagastep.DefaultCreatedAt holds the default value on creation for the created_at field.
	sagastep.DefaultCreatedAt = sagastepDescCreatedAt.Default.(func() time.Time)
	// sagastepDescUpdatedAt is the schema descriptor for updated_at field.
	sagastepDescUpdatedAt := sagastepMixinFields0[1].Descriptor()
	// sagastep.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sagastep.DefaultUpdatedAt = sagastepDescUpdatedAt.Default.(func() time.Time)
	// sagastep.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sagastep.UpdateDefaultUpdatedAt = sagastepDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sagastepDescSagaID is the schema descriptor for saga_id field.
	sagastepDescSagaID := sagastepFields[1].Descriptor()
	// sagastep.SagaIDValidator is a validator for the "saga_id" field. It is called by the builders before save.
	sagastep.SagaIDValidator = sagastepDescSagaID.Validators[0].(func(string) error)
	// sagastepDescSeq is the schema descriptor for seq field.
	sagastepDescSeq := sagastepFields[2].Descriptor()
	// sagastep.SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	sagastep.SeqValidator = sagastepDescSeq.Validators[0].(func(int) error)
	// sagastepDescName is the schema descriptor for name field.
	sagastepDescName := sagastepFields[3].Descriptor()
	// sagastep.NameValidator is a validator for the "name" field. It is called by the builders before save.
	sagastep.NameValidator = sagastepDescName.Validators[0].(func(string) error)
	// sagastepDescParticipant is the schema descriptor for participant field.
	sagastepDescParticipant := sagastepFields[4].Descriptor()
	// sagastep.ParticipantValidator is a validator for the "participant" field. It is called by the builders before save.
	sagastep.ParticipantValidator = sagastepDescParticipant.Validators[0].(func(string) error)
}
