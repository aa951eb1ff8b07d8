package mangadex

// Language is an ISO 639-1 code, optionally with a region or romanisation suffix.
type Language string

// Common languages.
const (
	LanguageEnglish             Language = "en"
	LanguageJapanese            Language = "ja"
	LanguageJapaneseRomanized   Language = "ja-ro"
	LanguageKorean              Language = "ko"
	LanguageKoreanRomanized     Language = "ko-ro"
	LanguageChineseSimplified   Language = "zh"
	LanguageChineseTraditional  Language = "zh-hk"
	LanguageChineseRomanized    Language = "zh-ro"
	LanguageFrench              Language = "fr"
	LanguageGerman              Language = "de"
	LanguageItalian             Language = "it"
	LanguageSpanish             Language = "es"
	LanguageSpanishLatinAmerica Language = "es-la"
	LanguagePortuguese          Language = "pt"
	LanguagePortugueseBrazil    Language = "pt-br"
	LanguageRussian             Language = "ru"
	LanguagePolish              Language = "pl"
	LanguageTurkish             Language = "tr"
	LanguageIndonesian          Language = "id"
	LanguageVietnamese          Language = "vi"
	LanguageThai                Language = "th"
	LanguageArabic              Language = "ar"
	LanguageUnknown             Language = "NULL"
)

// ContentRating of a manga.
type ContentRating string

const (
	ContentRatingSafe         ContentRating = "safe"
	ContentRatingSuggestive   ContentRating = "suggestive"
	ContentRatingErotica      ContentRating = "erotica"
	ContentRatingPornographic ContentRating = "pornographic"
)

// ReadingStatus is a user's library status for a manga.
type ReadingStatus string

const (
	ReadingStatusReading    ReadingStatus = "reading"
	ReadingStatusOnHold     ReadingStatus = "on_hold"
	ReadingStatusPlanToRead ReadingStatus = "plan_to_read"
	ReadingStatusDropped    ReadingStatus = "dropped"
	ReadingStatusReReading  ReadingStatus = "re_reading"
	ReadingStatusCompleted  ReadingStatus = "completed"
)

// ReadingStatuses lists every valid ReadingStatus.
func ReadingStatuses() []ReadingStatus {
	return []ReadingStatus{
		ReadingStatusReading,
		ReadingStatusOnHold,
		ReadingStatusPlanToRead,
		ReadingStatusDropped,
		ReadingStatusReReading,
		ReadingStatusCompleted,
	}
}

// CustomListVisibility of a custom list.
type CustomListVisibility string

const (
	CustomListPublic  CustomListVisibility = "public"
	CustomListPrivate CustomListVisibility = "private"
)

// Demographic is the target audience of a manga.
type Demographic string

const (
	DemographicShounen Demographic = "shounen"
	DemographicShoujo  Demographic = "shoujo"
	DemographicSeinen  Demographic = "seinen"
	DemographicJosei   Demographic = "josei"
	DemographicNone    Demographic = "none"
)

// MangaStatus is the publication status of a manga.
type MangaStatus string

const (
	MangaStatusOngoing   MangaStatus = "ongoing"
	MangaStatusCompleted MangaStatus = "completed"
	MangaStatusHiatus    MangaStatus = "hiatus"
	MangaStatusCancelled MangaStatus = "cancelled"
)

// MangaState is the moderation state of a manga.
type MangaState string

const (
	MangaStateDraft     MangaState = "draft"
	MangaStateSubmitted MangaState = "submitted"
	MangaStatePublished MangaState = "published"
	MangaStateRejected  MangaState = "rejected"
)

// TagGroup categorises tags.
type TagGroup string

const (
	TagGroupContent TagGroup = "content"
	TagGroupFormat  TagGroup = "format"
	TagGroupGenre   TagGroup = "genre"
	TagGroupTheme   TagGroup = "theme"
)

// UserRole is a site role held by a user.
type UserRole string

const (
	UserRoleAdmin           UserRole = "ROLE_ADMIN"
	UserRoleBanned          UserRole = "ROLE_BANNED"
	UserRoleContributor     UserRole = "ROLE_CONTRIBUTOR"
	UserRoleDesigner        UserRole = "ROLE_DESIGNER"
	UserRoleDeveloper       UserRole = "ROLE_DEVELOPER"
	UserRoleForumModerator  UserRole = "ROLE_FORUM_MODERATOR"
	UserRoleGlobalModerator UserRole = "ROLE_GLOBAL_MODERATOR"
	UserRoleGroupLeader     UserRole = "ROLE_GROUP_LEADER"
	UserRoleGroupMember     UserRole = "ROLE_GROUP_MEMBER"
	UserRoleGuest           UserRole = "ROLE_GUEST"
	UserRoleMember          UserRole = "ROLE_MEMBER"
	UserRoleMdAtHome        UserRole = "ROLE_MD_AT_HOME"
	UserRoleNews            UserRole = "ROLE_NEWS"
	UserRolePowerUploader   UserRole = "ROLE_POWER_UPLOADER"
	UserRolePublicRelations UserRole = "ROLE_PUBLIC_RELATIONS"
	UserRoleStaff           UserRole = "ROLE_STAFF"
	UserRoleUnverified      UserRole = "ROLE_UNVERIFIED"
	UserRoleUser            UserRole = "ROLE_USER"
	UserRoleVIP             UserRole = "ROLE_VIP"
)

// RelationshipType is the "type" of an object or relationship.
type RelationshipType string

const (
	RelationshipManga           RelationshipType = "manga"
	RelationshipChapter         RelationshipType = "chapter"
	RelationshipCoverArt        RelationshipType = "cover_art"
	RelationshipAuthor          RelationshipType = "author"
	RelationshipArtist          RelationshipType = "artist"
	RelationshipScanlationGroup RelationshipType = "scanlation_group"
	RelationshipTag             RelationshipType = "tag"
	RelationshipUser            RelationshipType = "user"
	RelationshipCustomList      RelationshipType = "custom_list"
	RelationshipLeader          RelationshipType = "leader"
	RelationshipMember          RelationshipType = "member"
	RelationshipCreator         RelationshipType = "creator"
	RelationshipMappingID       RelationshipType = "mapping_id"
)

// ReferenceExpansionResource names a relationship whose attributes should be
// embedded in the response ("includes[]").
type ReferenceExpansionResource string

const (
	IncludeManga           ReferenceExpansionResource = "manga"
	IncludeCoverArt        ReferenceExpansionResource = "cover_art"
	IncludeAuthor          ReferenceExpansionResource = "author"
	IncludeArtist          ReferenceExpansionResource = "artist"
	IncludeScanlationGroup ReferenceExpansionResource = "scanlation_group"
	IncludeTag             ReferenceExpansionResource = "tag"
	IncludeUser            ReferenceExpansionResource = "user"
	IncludeLeader          ReferenceExpansionResource = "leader"
	IncludeMember          ReferenceExpansionResource = "member"
)

// OrderDirection for sorted listings.
type OrderDirection string

const (
	OrderAscending  OrderDirection = "asc"
	OrderDescending OrderDirection = "desc"
)

// LegacyMappingType is the kind of resource being mapped from legacy ids.
type LegacyMappingType string

const (
	LegacyMappingGroup   LegacyMappingType = "group"
	LegacyMappingManga   LegacyMappingType = "manga"
	LegacyMappingChapter LegacyMappingType = "chapter"
	LegacyMappingTag     LegacyMappingType = "tag"
)

// IncludeFlag is the "0"/"1" switch used by listing filters.
type IncludeFlag string

const (
	IncludeFlagExclude IncludeFlag = "0"
	IncludeFlagInclude IncludeFlag = "1"
)
