package app

// region usergroupbackend-events

const TopicUserGroupBackendSaved = "usergroupbackend:saved"
const TopicUserGroupBackendDeleted = "usergroupbackend:deleted"

// endregion usergroupbackend-events

// region resource-events

const TopicResourceProbed = "resource:probed"

// endregion resource-events
