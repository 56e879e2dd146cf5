/*
Package wallet implements joint custody of pooled funds.

A fixed set of owners is configured once, together with a signature
threshold. Any owner can propose an outgoing transfer. Other owners
add their signatures until the threshold is reached, at which point
the transaction can be executed and the funds move from the custody
account to the recipient.

Transactions carry an expiration expressed as a progress counter
value. A transaction is valid only while the current counter is
strictly below its expiration; signing and executing an expired
transaction both fail.

Note that Execute deliberately performs no caller authorization: once
the quorum of owner signatures is collected, any identity may trigger
the transfer. The collected quorum itself is the authorization.
*/
package wallet
