package model

// All lists every persisted model in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&WorkingGroupModel{},
		&UserModel{},
		&MembershipModel{},
		&DeviceModel{},
		&DeviceUserModel{},
		&GroupScheduleModel{},
		&IndividualScheduleModel{},
		&NotificationModel{},
		&DeliveryRecordModel{},
	}
}
