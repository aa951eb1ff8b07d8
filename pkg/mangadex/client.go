package mangadex

// Client is the main interface for the MangaDex API client.
type Client interface {
	Handle

	Auth() AuthClient
	Captchas() CaptchaClient
	Chapter() ChapterClient
	Manga() MangaClient
	User() UserClient
	ScanlationGroup() ScanlationGroupClient
	Author() AuthorClient
	CustomList() CustomListClient
	Cover() CoverClient
	Legacy() LegacyClient
	Statistics() StatisticsClient
}

// AuthClient defines operations for sessions.
type AuthClient interface {
	Login() *LoginBuilder
	Logout() *LogoutBuilder
	Refresh() *RefreshTokenBuilder
	Check() *CheckTokenBuilder
}

// CaptchaClient defines operations for captcha challenges.
type CaptchaClient interface {
	Solve() *SolveCaptchaBuilder
}

// ChapterClient defines operations for chapters.
type ChapterClient interface {
	List() *ListChapterBuilder
	Get() *GetChapterBuilder
	Delete() *DeleteChapterBuilder
}

// MangaClient defines operations for manga and the user's library.
type MangaClient interface {
	ReadingStatuses() *MangaReadingStatusesBuilder
	ReadingStatus() *MangaReadingStatusBuilder
	UpdateReadingStatus() *UpdateMangaReadingStatusBuilder
	ListTags() *ListTagsBuilder
}

// UserClient defines operations for the logged-in user.
type UserClient interface {
	Me() *GetMeBuilder
	IsFollowingGroup() *IsFollowingBuilder
	IsFollowingUser() *IsFollowingBuilder
	IsFollowingManga() *IsFollowingBuilder
	IsFollowingList() *IsFollowingBuilder
}

// ScanlationGroupClient defines operations for scanlation groups.
type ScanlationGroupClient interface {
	Get() *GetGroupBuilder
	Follow() *FollowGroupBuilder
}

// AuthorClient defines operations for authors.
type AuthorClient interface {
	Get() *GetAuthorBuilder
}

// CustomListClient defines operations for custom lists.
type CustomListClient interface {
	Create() *CreateCustomListBuilder
}

// CoverClient defines operations for cover art.
type CoverClient interface {
	Upload() *UploadCoverBuilder
}

// LegacyClient defines operations for legacy id lookups.
type LegacyClient interface {
	IDMapping() *LegacyIDMappingBuilder
}

// StatisticsClient defines operations for statistics.
type StatisticsClient interface {
	Chapter() *GetChapterStatisticsBuilder
	FindChapters() *FindChapterStatisticsBuilder
}
