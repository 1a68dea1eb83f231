package models

// All lists every model for AutoMigrate, parents before children.
func All() []any {
	return []any{
		&UserModel{},
		&CategoryModel{},
		&TokenModel{},
		&ExhibitionModel{},
		&RegistrationModel{},
		&ExhibitionImageModel{},
		&ExhibitionDocumentModel{},
		&CompanyModel{},
		&ProductModel{},
		&CompanyGalleryModel{},
		&ContactRequestModel{},
		&ReviewModel{},
		&ReviewVoteModel{},
		&FavoriteModel{},
		&ActivityLogModel{},
		&DailyMetricModel{},
		&SiteSettingModel{},
	}
}
