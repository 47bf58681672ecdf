package services

// Services defined in this package:
// - AuthService: registration and login
// - UserService: profile reads and partial updates
// - CourseService: the professor-owned TA-position catalog
// - ApplicationService: the apply/assign/unassign/withdraw lifecycle
// - ExperienceService: the student experience ledger
