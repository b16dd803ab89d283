package repository
